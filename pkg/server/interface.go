/*
Package server implements msgpack IPC for the board solver.

The server operates on a request/response model over stdin/stdout:
clients send structured msgpack frames and receive one response frame
per request. Each message carries an ID field that is echoed back, so
clients can pipeline requests.

Solve requests carry the three tile lists plus optional limits:

	{"id": "req_001", "s": ["A", "E", "T"], "h": ["RD"], "min": 3}

The server responds with both axis word lists, longest words first:

	{"id": "req_001", "hw": [...], "vw": [...], "hc": 4, "vc": 9, "c": 13, "t": 120}

Dictionary requests report on the loaded word set:

	{"id": "dict_001", "action": "get_info"}

Malformed frames and validation failures produce an error frame with
the request's ID, a message and a status code. A ready frame is sent
once on startup; EOF on stdin shuts the server down.
*/
package server

// SolveRequest - board solve request
type SolveRequest struct {
	ID            string   `msgpack:"id"`
	Single        []string `msgpack:"s,omitempty"`
	Horizontal    []string `msgpack:"h,omitempty"`
	Vertical      []string `msgpack:"v,omitempty"`
	MinLength     int      `msgpack:"min,omitempty"`
	MaxHorizontal int      `msgpack:"maxh,omitempty"`
	MaxVertical   int      `msgpack:"maxv,omitempty"`
	Direction     string   `msgpack:"dir,omitempty"`
}

// SolveResponse - per-axis word lists with counts and timing
type SolveResponse struct {
	ID              string   `msgpack:"id"`
	Horizontal      []string `msgpack:"hw"`
	Vertical        []string `msgpack:"vw"`
	HorizontalCount int      `msgpack:"hc"`
	VerticalCount   int      `msgpack:"vc"`
	Total           int      `msgpack:"c"`
	TimeTaken       int64    `msgpack:"t"` // microseconds
}

// DictRequest - dictionary management request
type DictRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"` // "get_info"
}

// DictResponse - dictionary operation response
type DictResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Error     string `msgpack:"error,omitempty"`
	WordCount int    `msgpack:"word_count,omitempty"`
	Source    string `msgpack:"source,omitempty"`
}

// SolveError holds basic error information for failed requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// ReadyFrame is sent once when the server starts accepting requests
type ReadyFrame struct {
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}
