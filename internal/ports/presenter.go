package ports

import (
	"context"

	"github.com/bnema/gamectl/internal/domain"
)

// LaunchPresenter is the user-facing side of a launch. Implementations must
// not call back into the orchestrator synchronously from these methods.
type LaunchPresenter interface {
	StateChanged(state domain.LaunchState)
	PathNotConfigured(launch domain.LaunchContext)
	ConfirmLaunchWithoutCertificate(ctx context.Context) (bool, error)
	LaunchFailed(err error)
	PatchNotFound(diag domain.PatchDiagnostic)
	StopFailed(err error)
}

type NopPresenter struct{}

func (NopPresenter) StateChanged(domain.LaunchState)        {}
func (NopPresenter) PathNotConfigured(domain.LaunchContext) {}
func (NopPresenter) LaunchFailed(error)                     {}
func (NopPresenter) PatchNotFound(domain.PatchDiagnostic)   {}
func (NopPresenter) StopFailed(error)                       {}
func (NopPresenter) ConfirmLaunchWithoutCertificate(context.Context) (bool, error) {
	return false, nil
}
