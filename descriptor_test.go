package bigql

import (
	"errors"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
dataset: dataset
tables:
  - 2013_06_appspot_1
select:
  status:
    alias: status
conditions:
  - field: start_time
    type: INTEGER
    comparators:
      - condition: "<="
        value: 1371566954
order_by:
  fields: [timestamp]
  direction: desc
`)

	q, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if q.Dataset != "dataset" || len(q.Tables.Names) != 1 {
		t.Errorf("target = %q %#v", q.Dataset, q.Tables)
	}
	if len(q.Conditions) != 1 || q.Conditions[0].Comparators[0].Condition != LE {
		t.Errorf("conditions = %#v", q.Conditions)
	}
}

func TestParseJSON(t *testing.T) {
	q, err := ParseJSON([]byte(`{"dataset": "d", "tables": ["t1"]}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if q.Dataset != "d" {
		t.Errorf("dataset = %q", q.Dataset)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParseJSON([]byte(`{`)); err == nil {
		t.Error("expected JSON syntax error")
	}
	if _, err := ParseYAML([]byte("tables: {table: x}")); err == nil {
		t.Error("expected error for mapping table ref without date_range flag")
	}
}

func TestErrMissingTargetIsSentinel(t *testing.T) {
	wrapped := errors.Join(ErrMissingTarget)
	if !errors.Is(wrapped, ErrMissingTarget) {
		t.Error("ErrMissingTarget should survive wrapping")
	}
}
