package models

// SequenceCounter holds the last issued value for one counter namespace.
// It is only ever mutated with $inc inside a transaction, which keeps the
// sequence gapless: an aborted transaction rolls the increment back.
type SequenceCounter struct {
	ID           string `bson:"_id"`
	CurrentValue int64  `bson:"current_value"`
}
