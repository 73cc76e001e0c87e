package servicedef

// CPUStat holds raw CPU time counters as reported by peach-stats.
type CPUStat struct {
	User   uint64 `json:"user"`
	System uint64 `json:"system"`
	Idle   uint64 `json:"idle"`
	Nice   uint64 `json:"nice"`
}

type CPUStatPercentages struct {
	User   float32 `json:"user"`
	System float32 `json:"system"`
	Idle   float32 `json:"idle"`
	Nice   float32 `json:"nice"`
}

type DiskUsage struct {
	Filesystem     *string `json:"filesystem"`
	OneKBlocks     uint64  `json:"one_k_blocks"`
	OneKBlocksUsed uint64  `json:"one_k_blocks_used"`
	OneKBlocksFree uint64  `json:"one_k_blocks_free"`
	UsedPercentage uint32  `json:"used_percentage"`
	Mountpoint     string  `json:"mountpoint"`
}

type LoadAverage struct {
	One     float32 `json:"one"`
	Five    float32 `json:"five"`
	Fifteen float32 `json:"fifteen"`
}

type MemStat struct {
	Total uint64 `json:"total"`
	Free  uint64 `json:"free"`
	Used  uint64 `json:"used"`
}
