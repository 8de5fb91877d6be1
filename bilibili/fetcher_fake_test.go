package bilibili

import "context"

type fakeResponse struct {
	body string
	err  error
}

// fakeFetcher serves canned responses keyed by endpoint and records calls.
type fakeFetcher struct {
	responses map[string]fakeResponse
	calls     []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{responses: make(map[string]fakeResponse)}
}

func (f *fakeFetcher) on(feed Feed, body string) *fakeFetcher {
	f.responses[feed.Endpoint] = fakeResponse{body: body}
	return f
}

func (f *fakeFetcher) fail(feed Feed, err error) *fakeFetcher {
	f.responses[feed.Endpoint] = fakeResponse{err: err}
	return f
}

func (f *fakeFetcher) Fetch(_ context.Context, endpoint string, _ []Param) ([]byte, error) {
	f.calls = append(f.calls, endpoint)
	r, ok := f.responses[endpoint]
	if !ok {
		return []byte(`{}`), nil
	}
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.body), nil
}
