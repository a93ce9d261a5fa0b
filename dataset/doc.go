// Package dataset holds the candidate feature table consumed by stepwise selection.
//
// A Frame is an immutable set of named numeric columns with a fixed row
// count. Column names are indexed by their xxHash64 id; duplicate names are
// rejected when the frame is built.
//
// Tables are usually loaded from CSV files. LoadFile recognizes compressed
// inputs by extension (.zst, .s2, .lz4) and decompresses them before parsing:
//
//	frame, y, err := dataset.LoadFile("features.csv.zst", "target")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(frame.Names(), len(y))
//
// Empty cells and NA/NaN literals are read as NaN.
package dataset
