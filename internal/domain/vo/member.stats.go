package vo

import (
	"net/http"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
)

// MemberStatsEnvelope distinguishes a found member (200) from a failed lookup (404).
type MemberStatsEnvelope struct {
	Status int                 `json:"status"`
	Stats  *domain.MemberStats `json:"stats,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func MemberStatsFound(stats domain.MemberStats) MemberStatsEnvelope {
	return MemberStatsEnvelope{Status: http.StatusOK, Stats: &stats}
}

func MemberStatsNotFound(err error) MemberStatsEnvelope {
	return MemberStatsEnvelope{Status: http.StatusNotFound, Error: err.Error()}
}

func (e MemberStatsEnvelope) Found() bool {
	return e.Status == http.StatusOK && e.Stats != nil
}
