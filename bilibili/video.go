// Package bilibili fetches Bilibili's ranking and popular feeds and
// normalizes their first entry into a Video.
package bilibili

import (
	"github.com/bilihot/bilihot/constant"
	"github.com/samber/mo"
)

// Video is the normalized record of one upstream feed entry.
// Optional fields are None when upstream omitted them; a missing counter is not zero.
type Video struct {
	Title           string           `json:"title"`
	BVID            string           `json:"bvid"`
	AID             mo.Option[int64] `json:"aid"`
	Author          string           `json:"author"`
	AuthorID        mo.Option[int64] `json:"authorId"`
	ViewCount       mo.Option[int64] `json:"viewCount"`
	LikeCount       mo.Option[int64] `json:"likeCount"`
	CoinCount       mo.Option[int64] `json:"coinCount"`
	FavoriteCount   mo.Option[int64] `json:"favoriteCount"`
	ShareCount      mo.Option[int64] `json:"shareCount"`
	DanmakuCount    mo.Option[int64] `json:"danmakuCount"`
	DurationSeconds mo.Option[int64] `json:"durationSeconds"`
	URL             string           `json:"url"`
}

// VideoURL returns the canonical page for bvid, or "" when bvid is empty.
func VideoURL(bvid string) string {
	if bvid == "" {
		return ""
	}
	return constant.VideoPageURL + bvid
}

// Normalize maps a raw feed entry onto a Video. It never fails: absent
// blocks and keys become None.
func Normalize(item RawItem) Video {
	var (
		owner RawOwner
		stat  RawStat
	)
	if item.Owner != nil {
		owner = *item.Owner
	}
	if item.Stat != nil {
		stat = *item.Stat
	}

	return Video{
		Title:           item.Title,
		BVID:            item.BVID,
		AID:             item.AID.Option(),
		Author:          owner.Name,
		AuthorID:        owner.Mid.Option(),
		ViewCount:       stat.View.Option(),
		LikeCount:       stat.Like.Option(),
		CoinCount:       stat.Coin.Option(),
		FavoriteCount:   stat.Favorite.Option(),
		ShareCount:      stat.Share.Option(),
		DanmakuCount:    stat.Danmaku.Option(),
		DurationSeconds: item.Duration.Option(),
		URL:             VideoURL(item.BVID),
	}
}
