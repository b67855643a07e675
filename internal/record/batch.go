package record

// Batch is an ordered sequence of records of one entity type, all produced
// by a single builder invocation, together with the identifiers minted for
// them. Record order is insertion order and carries no semantic meaning.
type Batch struct {
	EntityType string
	Records    []*Record
	IDs        []string
}

// NewBatch creates an empty batch for the given entity type.
func NewBatch(entityType string, capacity int) *Batch {
	return &Batch{
		EntityType: entityType,
		Records:    make([]*Record, 0, capacity),
		IDs:        make([]string, 0, capacity),
	}
}

// Append adds a record and the identifier minted for it.
func (b *Batch) Append(r *Record, id string) {
	b.Records = append(b.Records, r)
	b.IDs = append(b.IDs, id)
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.Records)
}
