package store

// StmtID names one of the fixed, small set of SQL texts the store
// issues (spec §4.1, §9). Backends key their prepared-statement cache
// by StmtID rather than by the SQL string itself.
type StmtID int

const (
	StmtUpdateWordConfidence StmtID = iota
	StmtInsertWord
	StmtInsertWordIgnore
	StmtInsertPattern
	StmtMarkPatternLearned
	StmtWordIDOf
	StmtBestMatch
	StmtSuggestions
	StmtDeleteWordPatterns
	StmtDeleteWord
	StmtWordCount
	StmtPatternCount
	StmtLearnedWordsForExport
	StmtAllWords
	StmtAllPatterns
	StmtImportWord
	StmtImportPattern
	StmtExactPatternLookup
	StmtPatternRangeExists

	// StmtCount is the number of distinct statement slots a backend
	// must size its prepared-statement cache to hold.
	StmtCount
)
