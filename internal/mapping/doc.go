// Package mapping provides the YAML configuration of row conversion:
// conversion categories, temporal policy, key aliases and column type
// overrides.
//
// # Schema Overview
//
// The configuration file has the following structure:
//
//	version: "1"
//	# promote malformed temporal values to errors instead of nulls
//	strict_temporal: false
//	# disable normalized key matching ("UserID" -> "user_id")
//	exact_names: false
//	# conversion categories, a single name or a list
//	categories: [default, textual-bool]
//	# document key -> record field
//	aliases:
//	  user_key: id
//	# column -> column kind, for row sources that cannot tell
//	types:
//	  created_at: datetime2
//	  amount: numeric
//	# record decoded from every row, matched by key
//	fields:
//	  - name: id
//	    type: int64
//	  - name: created_at
//	    type: time
//	    optional: true
//
// Category names are those of primitive.ParseCategories; column kind names are
// column kind short names (column.ParseKind) and field types are primitive
// kind names (primitive.ParseKind).
package mapping
