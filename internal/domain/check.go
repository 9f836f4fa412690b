package domain

type CheckStatus string

const (
	CheckStatusFound        CheckStatus = "found"
	CheckStatusNotFound     CheckStatus = "not_found"
	CheckStatusNetworkError CheckStatus = "network_error"
)

// CheckOutcome is the catalog verdict for one fingerprint.
type CheckOutcome struct {
	Status  CheckStatus `json:"status"`
	Game    GameID      `json:"game_id,omitempty"`
	Version Version     `json:"version,omitempty"`
	Channel Channel     `json:"channel,omitempty"`
	Reason  string      `json:"reason,omitempty"`
}

func FoundOutcome(game GameID, version Version, channel Channel) CheckOutcome {
	return CheckOutcome{Status: CheckStatusFound, Game: game, Version: version, Channel: channel}
}

func NotFoundOutcome(reason string) CheckOutcome {
	return CheckOutcome{Status: CheckStatusNotFound, Reason: reason}
}

func NetworkErrorOutcome() CheckOutcome {
	return CheckOutcome{Status: CheckStatusNetworkError}
}

func (o CheckOutcome) Supported() bool {
	return o.Status == CheckStatusFound
}

// PathCheckResult tracks verification of a single discovered path. It is
// created checking and resolves exactly once.
type PathCheckResult struct {
	Path        string        `json:"path"`
	Fingerprint string        `json:"md5,omitempty"`
	Outcome     *CheckOutcome `json:"check_result,omitempty"`
	IsChecking  bool          `json:"is_checking"`
}

func CheckingResult(path string) PathCheckResult {
	return PathCheckResult{Path: path, IsChecking: true}
}

func (r PathCheckResult) Resolve(fingerprint string, outcome *CheckOutcome) PathCheckResult {
	resolved := PathCheckResult{Path: r.Path, Fingerprint: fingerprint}
	if outcome != nil {
		copied := *outcome
		resolved.Outcome = &copied
	}

	return resolved
}
