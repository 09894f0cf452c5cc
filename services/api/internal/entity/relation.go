package entity

import "time"

type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is exactly one of a video, a comment or a tweet. The zero value is
// invalid; build targets with VideoTarget, CommentTarget or TweetTarget.
type LikeTarget struct {
	kind LikeTargetKind
	id   string
}

func VideoTarget(id string) LikeTarget   { return LikeTarget{kind: LikeTargetVideo, id: id} }
func CommentTarget(id string) LikeTarget { return LikeTarget{kind: LikeTargetComment, id: id} }
func TweetTarget(id string) LikeTarget   { return LikeTarget{kind: LikeTargetTweet, id: id} }

func (t LikeTarget) Kind() LikeTargetKind { return t.kind }
func (t LikeTarget) ID() string           { return t.id }
func (t LikeTarget) Valid() bool          { return t.kind != "" && t.id != "" }

// LikeKey identifies a like relation: one liker, one target.
type LikeKey struct {
	LikerID UserID
	Target  LikeTarget
}

type Like struct {
	ID        string
	LikerID   UserID
	Target    LikeTarget
	CreatedAt time.Time
}

// SubscriptionKey identifies a subscription relation.
type SubscriptionKey struct {
	SubscriberID UserID
	ChannelID    UserID
}

func (k SubscriptionKey) SelfReferential() bool {
	return k.SubscriberID.Equal(k.ChannelID)
}
