package bilibili

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/bilihot/bilihot/constant"
	"github.com/bilihot/bilihot/log"
	logrus "github.com/sirupsen/logrus"
)

// Feed describes one upstream list endpoint.
type Feed struct {
	Name     string
	Endpoint string
	Params   []Param
	// ListPath is the chain of object keys leading to the entry array.
	ListPath []string
}

var (
	// Ranking is today's all-category ranking.
	Ranking = Feed{
		Name:     "ranking",
		Endpoint: constant.RankingURL,
		Params:   []Param{{"rid", "0"}, {"type", "all"}, {"day", "1"}},
		ListPath: []string{"data", "list", "list"},
	}

	// Popular is the first page of the trending feed.
	Popular = Feed{
		Name:     "popular",
		Endpoint: constant.PopularURL,
		Params:   []Param{{"ps", "20"}, {"pn", "1"}},
		ListPath: []string{"data", "list"},
	}
)

// URL is the full request URL including the query string.
func (f Feed) URL() string {
	return f.Endpoint + "?" + encodeParams(f.Params)
}

// envelope is the status header every web-interface response carries.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Top fetches the feed and normalizes its first entry. It returns ErrEmpty
// when the list is absent, not an array, empty, or starts with a non-object.
func (f Feed) Top(ctx context.Context, fetcher Fetcher) (Video, error) {
	body, err := fetcher.Fetch(ctx, f.Endpoint, f.Params)
	if err != nil {
		return Video{}, err
	}

	var env envelope
	if json.Unmarshal(body, &env) == nil && env.Code != 0 {
		log.WithFields(logrus.Fields{
			"feed":    f.Name,
			"code":    env.Code,
			"message": env.Message,
		}).Warn("upstream returned a non-zero code")
	}

	raw, ok := firstEntry(body, f.ListPath)
	if !ok {
		return Video{}, ErrEmpty
	}

	var item RawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return Video{}, &DecodeError{URL: f.Endpoint, Err: err}
	}

	return Normalize(item), nil
}

// firstEntry walks path through nested objects and returns the first
// element of the array found there, provided it is an object.
func firstEntry(body []byte, path []string) (json.RawMessage, bool) {
	node := json.RawMessage(body)
	for _, k := range path {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(node, &obj); err != nil || obj == nil {
			return nil, false
		}
		next, ok := obj[k]
		if !ok {
			return nil, false
		}
		node = next
	}

	var list []json.RawMessage
	if err := json.Unmarshal(node, &list); err != nil || len(list) == 0 {
		return nil, false
	}

	first := bytes.TrimSpace(list[0])
	if len(first) == 0 || first[0] != '{' {
		return nil, false
	}
	return first, true
}
