// Package finsync provides the tabular building blocks for incrementally
// synchronizing per-symbol financial records (news articles, social-sentiment
// snapshots) into local, human-inspectable CSV files.
//
// The core abstraction is the indexed Table: a row-per-unique-key container
// with named columns and mixed scalar cells (number, text, null). On top of
// it the package provides:
//   - Storage: load/save of a table to a delimited file, with either a
//     declared (headerless) or inferred (first row) schema.
//   - Predicate queries, updates and deletions over a closed operator set.
//   - Upsert merging of a freshly fetched batch into a stored table, so that
//     re-downloading known records is harmless.
//   - Date-descending sorting of the key index, and intersection of several
//     tables on a shared column.
//
// Remote access lives in the fmp sub-package; this package never touches the
// network. It serves as the foundational logic for the `fns` command-line
// tool.
package finsync
