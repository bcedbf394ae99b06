package iopgstore

// SQL text for each operation, bound with pgx's $1, $2, … positional
// placeholders instead of SQLite's ?. Kept alongside the iostore
// backend's stmtText map (same statements, same order) so the two
// backends are easy to audit against each other.
const (
	sqlUpdateWordConfidence = `UPDATE words SET confidence = confidence + 1 WHERE text = $1`
	sqlInsertWord           = `INSERT INTO words(text, confidence, learned_on) VALUES ($1, $2, $3)`
	sqlInsertWordIgnore     = `INSERT INTO words(text, confidence, learned_on) VALUES ($1, $2, $3) ON CONFLICT (text) DO NOTHING`
	sqlInsertPattern        = `INSERT INTO patterns(pattern, word_id) VALUES ($1, $2) ON CONFLICT (pattern, word_id) DO NOTHING`
	sqlMarkPatternLearned   = `UPDATE patterns SET learned = true WHERE pattern = $1 AND word_id = $2 AND learned = false`
	sqlWordIDOf             = `SELECT id FROM words WHERE text = $1`
	sqlBestMatch            = `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern = $1 AND p.learned = true
		ORDER BY w.confidence DESC
		LIMIT $2`
	sqlSuggestions = `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern > $1 AND p.pattern <= $2 AND p.learned = true
		GROUP BY w.id, w.text, w.confidence, w.learned_on
		ORDER BY w.confidence DESC
		LIMIT $3`
	sqlDeleteWordPatterns     = `DELETE FROM patterns WHERE word_id = $1`
	sqlDeleteWord             = `DELETE FROM words WHERE id = $1`
	sqlWordCount              = `SELECT count(*) FROM words`
	sqlPatternCount           = `SELECT count(*) FROM patterns`
	sqlLearnedWordsForExport  = `
		SELECT w.id, w.text, w.confidence, w.learned_on
		FROM words w
		WHERE w.id IN (SELECT DISTINCT word_id FROM patterns WHERE learned = true)
		ORDER BY w.confidence DESC`
	sqlAllWords    = `SELECT id, text, confidence, learned_on FROM words ORDER BY id`
	sqlAllPatterns = `SELECT pattern, word_id, learned FROM patterns ORDER BY word_id, pattern`
	sqlImportWord  = `
		INSERT INTO words(id, text, confidence, learned_on) VALUES ($1, $2, $3, 0)
		ON CONFLICT DO NOTHING`
	sqlImportPattern = `
		INSERT INTO patterns(pattern, word_id, learned) VALUES ($1, $2, $3)
		ON CONFLICT (pattern, word_id) DO NOTHING`
	sqlExactPatternLookup = `
		SELECT w.text
		FROM words w JOIN patterns p ON p.word_id = w.id
		WHERE p.pattern = $1
		LIMIT $2`
	sqlPatternRangeExists = `
		SELECT EXISTS(
			SELECT 1 FROM patterns WHERE pattern > $1 AND pattern <= $2
		)`
)
