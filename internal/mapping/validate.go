package mapping

import (
	"fmt"
	"slices"

	"rowdoc/column"
	"rowdoc/internal/diagnostic"
	"rowdoc/normalize"
	"rowdoc/primitive"
)

// Validate checks a configuration without applying it. Errors make the
// configuration unusable; warnings point at entries that have no effect.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if cfg.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported config version %q", cfg.Version), "", "")
	}

	for _, name := range cfg.Categories {
		if _, err := primitive.ParseCategories(name); err != nil {
			res.AddError("unknown_category", err.Error(), "", "")
		}
	}

	for _, key := range sortedKeys(cfg.Aliases) {
		field := cfg.Aliases[key]

		switch {
		case key == "" || field == "":
			res.AddError("empty_alias", fmt.Sprintf("alias %q -> %q has an empty side", key, field), key, "")
		case key == field:
			res.AddWarning("redundant_alias", fmt.Sprintf("alias %q points at itself", key), key, "")
		}
	}

	for _, col := range sortedKeys(cfg.Types) {
		name := cfg.Types[col]

		kind, ok := column.ParseKind(name)
		if !ok {
			res.AddError("unknown_kind", fmt.Sprintf("unknown column kind %q", name), col, name)
			continue
		}

		if !normalize.Supported(kind) {
			res.AddError("unsupported_kind", fmt.Sprintf("column kind %q cannot be converted", name), col, kind.Short())
		}
	}

	if len(cfg.Fields) > 0 {
		res.Merge(validateFields(cfg))
	}

	return res
}

// validateFields checks the record declaration and the aliases pointing into it.
func validateFields(cfg *Config) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	// unknown categories are reported above
	allowed, _ := primitive.ParseCategories(cfg.Categories...)

	declared := make(map[string]struct{}, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if f.Name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field of type %q has no name", f.Type), "", f.Type)
			continue
		}

		if _, ok := declared[f.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("field %q is declared twice", f.Name), f.Name, f.Type)
			continue
		}
		declared[f.Name] = struct{}{}

		kind, ok := primitive.ParseKind(f.Type)
		if !ok {
			res.AddError("unknown_field_type", fmt.Sprintf("unknown field type %q", f.Type), f.Name, f.Type)
			continue
		}

		if !reachable(kind, allowed) {
			res.AddWarning("unreachable_field_type",
				fmt.Sprintf("no enabled category converts any document value into %q", f.Type), f.Name, f.Type)
		}
	}

	for _, key := range sortedKeys(cfg.Aliases) {
		field := cfg.Aliases[key]
		if field == "" {
			continue
		}

		if _, ok := declared[field]; !ok {
			res.AddError("unknown_alias_target", fmt.Sprintf("alias %q targets undeclared field %q", key, field), key, "")
		}
	}

	return res
}

// reachable reports whether some document value converts into kind under allowed.
func reachable(kind primitive.KindEnum, allowed primitive.CategoryEnum) bool {
	for _, pair := range primitive.Pairs(allowed) {
		if pair.To == kind && primitive.HasConverter(pair) {
			return true
		}
	}

	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
