package preflight

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// diskSpaceWarnMargin: available space within 10% above the minimum
// passes the check but is surfaced as a warning.
const diskSpaceWarnMargin = 1.1

func PrivilegeCheck() NamedCheck {
	return NamedCheck{
		Name: "privilege-level",
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			if !env.Privileged {
				return models.CheckResult{
					Status: models.StatusFail,
					Detail: "installation requires elevated privileges",
				}
			}
			return models.CheckResult{
				Status: models.StatusPass,
				Detail: "running with elevated privileges",
			}
		},
	}
}

func DiskSpaceCheck(path string, minimumBytes uint64) NamedCheck {
	return NamedCheck{
		Name: "disk-space",
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			available, err := env.FS.AvailableBytes(path)
			if err != nil {
				return models.CheckResult{
					Status: models.StatusFail,
					Detail: fmt.Sprintf("could not read available space at %s: %v", path, err),
				}
			}

			if available < minimumBytes {
				return models.CheckResult{
					Status: models.StatusFail,
					Detail: fmt.Sprintf("%d bytes available at %s, %d required", available, path, minimumBytes),
				}
			}

			if float64(available) < float64(minimumBytes)*diskSpaceWarnMargin {
				return models.CheckResult{
					Status: models.StatusWarn,
					Detail: fmt.Sprintf("%d bytes available at %s, within 10%% of the %d minimum", available, path, minimumBytes),
				}
			}

			return models.CheckResult{
				Status: models.StatusPass,
				Detail: fmt.Sprintf("%d bytes available at %s", available, path),
			}
		},
	}
}

// MountPresentCheck is advisory only: a data directory on the root
// filesystem works, it just isn't the recommended layout.
func MountPresentCheck(path string) NamedCheck {
	return NamedCheck{
		Name: "mount-present",
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			mounted, err := env.FS.IsMountPoint(path)
			if err != nil {
				return models.CheckResult{
					Status: models.StatusWarn,
					Detail: fmt.Sprintf("could not inspect mount at %s: %v", path, err),
				}
			}
			if !mounted {
				return models.CheckResult{
					Status: models.StatusWarn,
					Detail: fmt.Sprintf("%s is not a dedicated mount point", path),
				}
			}
			return models.CheckResult{
				Status: models.StatusPass,
				Detail: fmt.Sprintf("%s is a dedicated mount point", path),
			}
		},
	}
}

func RemoteReachableCheck(url string, timeout time.Duration) NamedCheck {
	return NamedCheck{
		Name: "remote-reachable",
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			probeCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			status, err := env.HTTP.Head(probeCtx, url)
			if err != nil {
				return models.CheckResult{
					Status: models.StatusFail,
					Detail: fmt.Sprintf("%s unreachable: %v", url, err),
				}
			}

			return models.CheckResult{
				Status: models.StatusPass,
				Detail: fmt.Sprintf("%s responded with status %d", url, status),
			}
		},
	}
}

// BrokerReachableCheck dials the broker port of every topology member
// in ascending id order. All members must accept a connection.
func BrokerReachableCheck(port int, timeout time.Duration) NamedCheck {
	return NamedCheck{
		Name: "broker-reachable",
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			var unreachable []string

			for _, member := range env.Topology.Ordered() {
				addr := net.JoinHostPort(member.Host, strconv.Itoa(port))

				probeCtx, cancel := context.WithTimeout(ctx, timeout)
				err := env.Dialer.Ping(probeCtx, addr)
				cancel()

				if err != nil {
					unreachable = append(unreachable, fmt.Sprintf("node %d (%s): %v", member.ID, addr, err))
				}
			}

			if len(unreachable) > 0 {
				return models.CheckResult{
					Status: models.StatusFail,
					Detail: "unreachable members: " + strings.Join(unreachable, "; "),
				}
			}

			return models.CheckResult{
				Status: models.StatusPass,
				Detail: fmt.Sprintf("all %d members reachable on port %d", env.Topology.Size(), port),
			}
		},
	}
}

// StandardChecks is the fixed battery the install flow runs, in the
// order the operator expects to read the report.
func StandardChecks(dataDir string, minimumBytes uint64, repoURL string, brokerPort int, timeout time.Duration) []NamedCheck {
	checks := []NamedCheck{
		PrivilegeCheck(),
		DiskSpaceCheck(dataDir, minimumBytes),
		MountPresentCheck(dataDir),
	}
	if repoURL != "" {
		checks = append(checks, RemoteReachableCheck(repoURL, timeout))
	}
	checks = append(checks, BrokerReachableCheck(brokerPort, timeout))
	return checks
}
