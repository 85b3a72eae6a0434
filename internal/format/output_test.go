package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	v := map[string]int{"n": 1}

	var compact bytes.Buffer
	if err := Write(&compact, v, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := compact.String(); got != "{\"n\":1}\n" {
		t.Fatalf("compact = %q", got)
	}

	var pretty bytes.Buffer
	if err := Write(&pretty, v, true); err != nil {
		t.Fatalf("Write pretty: %v", err)
	}
	if !strings.Contains(pretty.String(), "\n  \"n\": 1\n") {
		t.Fatalf("pretty = %q", pretty.String())
	}
}
