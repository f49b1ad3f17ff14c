package record

import "time"
import "go.mongodb.org/mongo-driver/bson/primitive"

// Record 一次操作的调用记录
// 只做事后追溯, 三个操作本身不读这张表
type Record struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Operation   string             `bson:"operation" json:"operation"`
	SessionId   string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	ConcernType string             `bson:"concern_type,omitempty" json:"concern_type,omitempty"`
	RiskLevel   string             `bson:"risk_level,omitempty" json:"risk_level,omitempty"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CreateTime  time.Time          `bson:"create_time" json:"create_time"`
}
