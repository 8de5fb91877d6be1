package bilibili

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/samber/mo"
)

// RawItem is one entry of either feed's list. Both feeds share this shape;
// only the path to the list differs.
type RawItem struct {
	Title    string    `json:"title"`
	BVID     string    `json:"bvid"`
	AID      Count     `json:"aid"`
	Duration Count     `json:"duration"`
	Owner    *RawOwner `json:"owner"`
	Stat     *RawStat  `json:"stat"`
}

// RawOwner is the uploader block of a RawItem.
type RawOwner struct {
	Mid  Count  `json:"mid"`
	Name string `json:"name"`
}

// RawStat is the engagement block of a RawItem.
type RawStat struct {
	View     Count `json:"view"`
	Like     Count `json:"like"`
	Coin     Count `json:"coin"`
	Favorite Count `json:"favorite"`
	Share    Count `json:"share"`
	Danmaku  Count `json:"danmaku"`
}

// Count is an upstream integer that may be absent, null or not a number.
// Only a JSON number yields a present value.
type Count struct {
	value mo.Option[int64]
}

// Option returns the decoded value.
func (c Count) Option() mo.Option[int64] {
	return c.value
}

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (c *Count) UnmarshalJSON(data []byte) error {
	c.value = mo.None[int64]()

	data = bytes.TrimSpace(data)
	// Quoted numbers would decode into json.Number too; upstream counters are bare.
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil {
		c.value = mo.Some(i)
		return nil
	}
	if f, err := n.Float64(); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		c.value = mo.Some(int64(f))
	}
	return nil
}
