// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func FormatValidator(value any) error {
	var validFormatFlagValues = []string{
		"plain", "text", "text-tight", "markdown", "md", "latex", "latex-complete"}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be one of %v", validFormatFlagValues)
	}
	valid := false
	for _, v := range validFormatFlagValues {
		if strings.EqualFold(v, s) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validFormatFlagValues)
	}
	return nil
}
