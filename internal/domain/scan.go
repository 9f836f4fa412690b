package domain

const EventScanProgress = "scan-progress"

// ScanProgress is one immutable snapshot of a running drive scan.
type ScanProgress struct {
	CurrentPath        string   `json:"current_path"`
	FilesScanned       uint64   `json:"files_scanned"`
	DirectoriesScanned uint64   `json:"directories_scanned"`
	FoundPaths         []string `json:"found_paths"`
}

func (p ScanProgress) Clone() ScanProgress {
	clone := p
	if p.FoundPaths != nil {
		clone.FoundPaths = append([]string(nil), p.FoundPaths...)
	}

	return clone
}
