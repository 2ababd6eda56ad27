// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
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

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func ChannelValidator(value any) error {
	if !query.ValidChannel(value.(string)) {
		return fmt.Errorf("must be one of %v", query.Channels)
	}
	return nil
}

func FormatValidator(value any) error {
	_, err := output.ParseFormat(value.(string))
	return err
}
