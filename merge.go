package finsync

// Merge reconciles a freshly fetched batch into the table, update-or-insert
// style:
//
//  1. keys of the batch missing from the table are inserted as all-null rows,
//  2. columns of the batch missing from the table are added as all-null
//     columns,
//  3. every non-null batch cell overwrites the corresponding table cell.
//
// Cells the batch says nothing about are left untouched, so merging the same
// batch twice is a no-op and a partial batch never erases unrelated data.
func (t *Table) Merge(batch *Table) {
	for _, key := range batch.keys {
		if !t.HasKey(key) {
			// Insert cannot fail on a key we just checked is absent.
			t.Insert(key)
		}
	}
	for _, col := range batch.cols {
		if !t.HasColumn(col) {
			t.AddColumn(col, Null())
		}
	}
	for i, key := range batch.keys {
		for j, col := range batch.cols {
			v := batch.rows[i][j]
			if v.IsNull() {
				continue
			}
			t.Set(key, col, v)
		}
	}
}
