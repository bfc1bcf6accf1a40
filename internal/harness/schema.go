package harness

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/time64/internal/ir"
)

//go:embed schema.cue
var schemaSource string

// Schema validates canonical records against schema.cue.
//
// Thread-safety: a CUE context is not safe for concurrent use, so calls
// are serialized.
type Schema struct {
	mu     sync.Mutex
	ctx    *cue.Context
	record cue.Value
}

// NewSchema compiles the record schema.
func NewSchema() (*Schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	record := v.LookupPath(cue.ParsePath("#Record"))
	if err := record.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Record: %w", err)
	}
	return &Schema{ctx: ctx, record: record}, nil
}

// ValidateRecord checks the canonical form of rec against #Record.
func (s *Schema) ValidateRecord(rec ir.Record) error {
	data, err := ir.MarshalCanonical(rec.Object())
	if err != nil {
		return fmt.Errorf("seq %d: canonical form: %w", rec.Seq, err)
	}
	return s.ValidateJSON(data)
}

// ValidateJSON checks a JSON-encoded record against #Record.
func (s *Schema) ValidateJSON(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.ctx.CompileBytes(data, cue.Filename("record.json"))
	if err := v.Err(); err != nil {
		return fmt.Errorf("parse record: %w", err)
	}
	if err := s.record.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("record schema: %w", err)
	}
	return nil
}
