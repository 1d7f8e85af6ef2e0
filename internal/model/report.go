package model

import "fmt"

// RadarParams are the validated inputs for one TOP100 run.
type RadarParams struct {
	Region       string `json:"region"`
	Lang         string `json:"lang"`
	Category     string `json:"cat"`
	Days         int    `json:"days"`
	ExcludeTopic bool   `json:"excludeTopic"`
	StrictLang   bool   `json:"strictLang"`
	StrictCat    bool   `json:"strictCat"`
}

// CacheKey encodes the full parameter tuple; two runs with the same key
// produce interchangeable reports within the cache TTL.
func (p RadarParams) CacheKey() string {
	return fmt.Sprintf("top100|r=%s|l=%s|c=%s|d=%d|xT=%d|sL=%d|sC=%d",
		p.Region, p.Lang, p.Category, p.Days,
		boolBit(p.ExcludeTopic), boolBit(p.StrictLang), boolBit(p.StrictCat))
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DebugCounters tracks per-drop-reason counts across the enrichment workers.
type DebugCounters struct {
	Checked       int `json:"checked"`
	DroppedByCat  int `json:"droppedByCat"`
	DroppedByLang int `json:"droppedByLang"`
	NoVideos      int `json:"noVideos"`
}

// RunMeta echoes the run inputs and records the pipeline funnel.
type RunMeta struct {
	Region             string        `json:"region"`
	Lang               string        `json:"lang"`
	Category           string        `json:"cat"`
	Days               int           `json:"days"`
	ExcludeTopic       bool          `json:"excludeTopic"`
	StrictLang         bool          `json:"strictLang"`
	StrictCat          bool          `json:"strictCat"`
	CandidateChannels  int           `json:"candidateChannels"`
	AfterChannelFilter int           `json:"afterChannelFilter"`
	RoughScored        int           `json:"roughScored"`
	ScoredCount        int           `json:"scoredCount"`
	DebugCounters      DebugCounters `json:"debugCounters"`
	ElapsedMs          int64         `json:"elapsedMs"`
}

// Report is the final TOP100 payload returned to the caller.
type Report struct {
	GeneratedAt string          `json:"generatedAt"`
	Meta        RunMeta         `json:"meta"`
	Items       []ScoredChannel `json:"items"`
}
