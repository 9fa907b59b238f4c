package types

type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultSuccess
	ResultFailure
)

// QueryResult is Success(payload) or Failure(message, rawResponse). The zero
// value means no query has settled yet.
type QueryResult struct {
	kind        ResultKind
	payload     Payload
	message     string
	rawResponse string
}

func Success(payload Payload) QueryResult {
	return QueryResult{kind: ResultSuccess, payload: payload}
}

func Failure(message, rawResponse string) QueryResult {
	return QueryResult{kind: ResultFailure, message: message, rawResponse: rawResponse}
}

func (r QueryResult) Kind() ResultKind    { return r.kind }
func (r QueryResult) IsSuccess() bool     { return r.kind == ResultSuccess }
func (r QueryResult) IsFailure() bool     { return r.kind == ResultFailure }
func (r QueryResult) Payload() Payload    { return r.payload }
func (r QueryResult) Message() string     { return r.message }
func (r QueryResult) RawResponse() string { return r.rawResponse }
