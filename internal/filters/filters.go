// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// ParseSpec parses an ignore specification into a variable set. A spec
// opening with '{' is read as a JSON object mapping group names to arrays of
// variable names; anything else is read as comma-separated group.variable
// pairs. Names are lowercased in both forms. An empty spec yields an empty
// set.
func ParseSpec(spec string) (namelist.VarSet, error) {
	vs := namelist.VarSet{}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return vs, nil
	}

	if strings.HasPrefix(spec, "{") {
		return parseJSONSpec(spec)
	}

	// Split the spec and iterate over each group.variable entry.
	for entry := range strings.SplitSeq(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		group, variable, ok := strings.Cut(entry, ".")
		if !ok || group == "" || variable == "" {
			return nil, fmt.Errorf("invalid ignore entry %q: want group.variable", entry)
		}

		vs.Add(strings.ToLower(group), strings.ToLower(variable))
	}

	return vs, nil
}

func parseJSONSpec(spec string) (namelist.VarSet, error) {
	if !gjson.Valid(spec) {
		return nil, fmt.Errorf("invalid ignore spec: not valid JSON")
	}

	parsed := gjson.Parse(spec)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("invalid ignore spec: want a JSON object of variable name arrays")
	}

	vs := namelist.VarSet{}
	var err error
	parsed.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = fmt.Errorf("invalid ignore spec: group %q: want an array of variable names", key.String())
			return false
		}
		for _, element := range value.Array() {
			if element.Type != gjson.String {
				err = fmt.Errorf("invalid ignore spec: group %q: want string variable names", key.String())
				return false
			}
			vs.Add(strings.ToLower(key.String()), strings.ToLower(element.String()))
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return vs, nil
}

// Counters returns the built-in set of run counter variables. These are the
// variables that advance between successive runs of the same configuration,
// so ignoring them keeps restart-to-restart comparisons quiet.
func Counters() namelist.VarSet {
	vs := namelist.VarSet{}
	vs.Add("setup_nml", "istep0")
	vs.Add("coupling", "inidate", "runtime", "truntime0")
	return vs
}
