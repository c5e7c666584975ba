package server

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordbiter/pkg/config"
	"github.com/bastiangx/wordbiter/pkg/dictionary"
)

func testDict() *dictionary.Dict {
	return dictionary.New([]string{
		"TEA", "EAT", "ATE", "RAT", "ART", "TAR", "RATE", "RATED",
	})
}

// runServer feeds pre-encoded requests through a server and returns a
// decoder over everything it wrote.
func runServer(t *testing.T, requests ...interface{}) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	srv := NewServerWithIO(testDict(), config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("server: %v", err)
	}
	return msgpack.NewDecoder(&out)
}

func expectReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var ready ReadyFrame
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready frame: %v", err)
	}
	if ready.Status != "ready" || ready.Words == 0 {
		t.Fatalf("ready frame = %+v", ready)
	}
}

func TestServerSolve(t *testing.T) {
	dec := runServer(t, SolveRequest{
		ID:         "req1",
		Single:     []string{"A", "E", "T"},
		Horizontal: []string{"RD"},
	})
	expectReady(t, dec)

	var resp SolveResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ID != "req1" {
		t.Errorf("ID = %q, want req1", resp.ID)
	}
	if resp.HorizontalCount != len(resp.Horizontal) || resp.VerticalCount != len(resp.Vertical) {
		t.Errorf("counts disagree with lists: %+v", resp)
	}
	if resp.Total != resp.HorizontalCount+resp.VerticalCount {
		t.Errorf("Total = %d, want %d", resp.Total, resp.HorizontalCount+resp.VerticalCount)
	}
	if len(resp.Horizontal) == 0 || resp.Horizontal[0] != "ATE" {
		t.Errorf("horizontal = %v, want ATE first", resp.Horizontal)
	}
	for _, w := range resp.Vertical {
		if w == "RATED" {
			t.Error("RATED returned despite R and D sharing a tile")
		}
	}
}

func TestServerLowercaseTiles(t *testing.T) {
	dec := runServer(t, SolveRequest{
		ID:     "req2",
		Single: []string{"t", "e", "a"},
	})
	expectReady(t, dec)

	var resp SolveResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Horizontal) == 0 {
		t.Fatalf("no horizontal words for t/e/a: %+v", resp)
	}
}

func TestServerDictInfo(t *testing.T) {
	dec := runServer(t, DictRequest{ID: "d1", Action: "get_info"})
	expectReady(t, dec)

	var resp DictResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" || resp.WordCount != testDict().Len() {
		t.Errorf("dict info = %+v", resp)
	}
}

func TestServerRejectsEmptyBoard(t *testing.T) {
	dec := runServer(t, SolveRequest{ID: "req3"})
	expectReady(t, dec)

	var errFrame SolveError
	if err := dec.Decode(&errFrame); err != nil {
		t.Fatalf("decoding error frame: %v", err)
	}
	if errFrame.ID != "req3" || errFrame.Code != 400 {
		t.Errorf("error frame = %+v", errFrame)
	}
}

func TestServerRejectsBadTile(t *testing.T) {
	dec := runServer(t, SolveRequest{ID: "req4", Single: []string{"A2"}})
	expectReady(t, dec)

	var errFrame SolveError
	if err := dec.Decode(&errFrame); err != nil {
		t.Fatalf("decoding error frame: %v", err)
	}
	if errFrame.Code != 400 {
		t.Errorf("error frame = %+v", errFrame)
	}
}

func TestServerUnknownAction(t *testing.T) {
	dec := runServer(t, DictRequest{ID: "d2", Action: "set_size"})
	expectReady(t, dec)

	var errFrame SolveError
	if err := dec.Decode(&errFrame); err != nil {
		t.Fatalf("decoding error frame: %v", err)
	}
	if errFrame.ID != "d2" || errFrame.Code != 400 {
		t.Errorf("error frame = %+v", errFrame)
	}
}
