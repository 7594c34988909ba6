package graph

import (
	"context"
	"errors"
	"testing"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"name":   "Tom Hanks",
		"exists": true,
		"count":  int64(3),
		"titles": []any{"Big", 42, "Splash"},
	}

	if got := rec.String("name"); got != "Tom Hanks" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := rec.String("missing"); got != "" {
		t.Fatalf("expected empty string for missing key, got %q", got)
	}
	if !rec.Bool("exists") {
		t.Fatalf("expected true")
	}
	if got := rec.Int("count"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	titles := rec.Strings("titles")
	if len(titles) != 2 || titles[0] != "Big" || titles[1] != "Splash" {
		t.Fatalf("unexpected titles %v", titles)
	}
}

func TestMemoryClient_RespondsPerStatement(t *testing.T) {
	mem := NewMemoryClient()
	mem.Respond("RETURN 1", Result{Records: []Record{{"n": int64(1)}}})
	ctx := context.Background()

	res, err := mem.ExecuteRead(ctx, "RETURN 1", nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Int("n") != 1 {
		t.Fatalf("unexpected result %+v", res)
	}

	res, err = mem.ExecuteRead(ctx, "RETURN 1", nil)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(res.Records) != 0 {
		t.Fatalf("expected queue to be drained, got %+v", res)
	}

	params := map[string]any{"name": "x"}
	if _, err := mem.ExecuteWrite(ctx, "CREATE (n)", params); err != nil {
		t.Fatalf("write: %v", err)
	}
	params["name"] = "mutated"

	writes := mem.WriteCalls()
	if len(writes) != 1 || writes[0].Params["name"] != "x" {
		t.Fatalf("expected recorded params to be a copy, got %+v", writes)
	}
	if len(mem.ReadCalls()) != 2 || len(mem.Calls()) != 3 {
		t.Fatalf("unexpected call log %+v", mem.Calls())
	}
}

func TestMemoryClient_Errors(t *testing.T) {
	boom := errors.New("boom")
	mem := NewMemoryClient().WithError(boom).WithConnectivityError(boom)

	if _, err := mem.ExecuteWrite(context.Background(), "CREATE (n)", nil); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := mem.VerifyConnectivity(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected connectivity error, got %v", err)
	}
	if len(mem.Calls()) != 0 {
		t.Fatalf("failed calls must not be recorded")
	}
}
