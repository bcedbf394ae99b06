package iostore

import "github.com/varnam/knownwords/pkg/store"

// stmtText holds the fixed SQL text for each store.StmtID. The set is
// small (19 statements) and never grows at runtime.
var stmtText = map[store.StmtID]string{
	store.StmtUpdateWordConfidence: `
		UPDATE words SET confidence = confidence + 1 WHERE text = ?`,
	store.StmtInsertWord: `
		INSERT INTO words(text, confidence, learned_on) VALUES (?, ?, ?)`,
	store.StmtInsertWordIgnore: `
		INSERT OR IGNORE INTO words(text, confidence, learned_on) VALUES (?, ?, ?)`,
	store.StmtInsertPattern: `
		INSERT OR IGNORE INTO patterns(pattern, word_id) VALUES (?, ?)`,
	store.StmtMarkPatternLearned: `
		UPDATE patterns SET learned = 1
		WHERE pattern = ? AND word_id = ? AND learned = 0`,
	store.StmtWordIDOf: `
		SELECT id FROM words WHERE text = ?`,
	store.StmtBestMatch: `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern = ? AND p.learned = 1
		ORDER BY w.confidence DESC
		LIMIT ?`,
	store.StmtSuggestions: `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern > ? AND p.pattern <= ? AND p.learned = 1
		GROUP BY w.id
		ORDER BY w.confidence DESC
		LIMIT ?`,
	store.StmtDeleteWordPatterns: `
		DELETE FROM patterns WHERE word_id = ?`,
	store.StmtDeleteWord: `
		DELETE FROM words WHERE id = ?`,
	store.StmtWordCount: `
		SELECT count(*) FROM words`,
	store.StmtPatternCount: `
		SELECT count(*) FROM patterns`,
	store.StmtLearnedWordsForExport: `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w
		WHERE w.id IN (SELECT DISTINCT word_id FROM patterns WHERE learned = 1)
		ORDER BY w.confidence DESC`,
	store.StmtAllWords: `
		SELECT id, text, confidence, learned_on FROM words ORDER BY id`,
	store.StmtAllPatterns: `
		SELECT pattern, word_id, learned FROM patterns
		ORDER BY word_id, pattern`,
	store.StmtImportWord: `
		INSERT OR IGNORE INTO words(id, text, confidence, learned_on)
		VALUES (?, ?, ?, 0)`,
	store.StmtImportPattern: `
		INSERT OR IGNORE INTO patterns(pattern, word_id, learned) VALUES (?, ?, ?)`,
	store.StmtExactPatternLookup: `
		SELECT w.text
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern = ?
		LIMIT ?`,
	store.StmtPatternRangeExists: `
		SELECT EXISTS(
			SELECT 1 FROM patterns WHERE pattern > ? AND pattern <= ?
		)`,
}
