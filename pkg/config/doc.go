// Package config manages configuration parsing and validation for textsweep.
//
//	            +-------------+
//	            |   Config    |
//	            |   (Jobs)    |
//	            +------+------+
//	                   |
//	      +-----------+-----------+-----------+
//	      |                       |           |
//	+-----+-----+           +----+----+  +---+---+
//	|   YAML    |           |   HCL   |  | JSON  |
//	| Parser    |           | Parser  |  |Parser |
//	+-----------+           +---------+  +-------+
//
// 🎯 Purpose:
// - Loads replace and extract jobs from a single file
// - Picks the parser by file extension
// - Fills defaults and validates every job before anything touches disk
//
// 🔄 Flow:
// 1. Reads configuration from file
// 2. Parses format-specific syntax
// 3. Validates jobs and fills defaults (roots, marker, output, ignore)
// 4. Hands the jobs to the operation runner
//
// 🔍 Example:
//
//	# .textsweep.yaml
//	replace:
//	  - root: lib/ui
//	    rules:
//	      - old: "'MontSerrat'"
//	        new: "'Poppins'"
//	        file: "**/*.dart"
//	extract:
//	  - root: ../lib
//	    output: dnd.json
//	    include: ["**/*.dart"]
//
//	cfg, err := config.Load(ctx, ".textsweep.yaml")
//	if err != nil {
//		return errors.Errorf("loading config: %w", err)
//	}
package config
