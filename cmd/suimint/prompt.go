// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/suimint/utils"
)

var (
	errInputEmpty    = errors.New("input is empty")
	errInvalidChoice = errors.New("invalid choice")
)

func validateChoice(input string) error {
	if len(input) == 0 {
		return errInputEmpty
	}
	lower := strings.ToLower(input)
	if lower == "y" || lower == "n" {
		return nil
	}
	return errInvalidChoice
}

// confirmSubmit asks before a signed transaction is sent to the fullnode.
func confirmSubmit() (bool, error) {
	promptText := promptui.Prompt{
		Label:    "submit transaction (y/n)",
		Validate: validateChoice,
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	if strings.ToLower(rawContinue) == "n" {
		utils.Outf("{{red}}exiting...{{/}}\n")
		return false, nil
	}
	return true, nil
}
