package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/csmblade/PANfm/internal/adapter"
	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/metrics"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

// Names of the throughput poll stages, reported in ThroughputSnapshot.Errors
// and used as the stage label of metrics.PollStageFailures.
const (
	StageThroughput    = "throughput"
	StageWANThroughput = "wan_throughput"
	StageSessions      = "sessions"
	StageResources     = "resources"
	StageInterfaces    = "interfaces"
	StageLicense       = "license"
)

// Poll kinds used as the kind label of metrics.PollDuration.
const (
	pollThroughput = "throughput"
	pollPolicies   = "policies"
	pollLicense    = "license"
)

const (
	policyTypeSecurity = "security"
	notAvailable       = "N/A"

	// lastSeenInterval throttles last_seen writes caused by polling.
	lastSeenInterval = time.Minute
)

// activeTarget is the firewall a poll runs against.
type activeTarget struct {
	// key identifies the device in the rate and trend trackers.
	key string

	// deviceID is empty for the legacy single-device target.
	deviceID string

	target       models.FirewallTarget
	iface        string
	wanInterface string
}

// dashboardService is the polling orchestrator. Each poll resolves the
// active firewall, queries it stage by stage and feeds the counters into
// the rate and trend trackers it owns.
type dashboardService struct {
	devices  store.DeviceStorage
	settings store.SettingsStorage
	client   adapter.FirewallClient

	rates  *RateTracker
	trends *TrendTracker
	calls  *APICallStats

	legacy config.Firewall
	clock  utils.Clock

	// touchMu guards lastTouched.
	touchMu     sync.Mutex
	lastTouched map[string]time.Time

	logger *logger.Logger
}

// NewDashboardService constructs the polling orchestrator. calls must be the
// CallRecorder the client was built with so that api_stats counts every
// firewall query.
func NewDashboardService(
	devices store.DeviceStorage,
	settings store.SettingsStorage,
	client adapter.FirewallClient,
	rates *RateTracker,
	trends *TrendTracker,
	calls *APICallStats,
	legacy config.Firewall,
	clock utils.Clock,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		devices:     devices,
		settings:    settings,
		client:      client,
		rates:       rates,
		trends:      trends,
		calls:       calls,
		legacy:      legacy,
		clock:       clock,
		lastTouched: make(map[string]time.Time),
		logger:      logger,
	}
}

// Throughput runs one composite poll. Every stage that fails falls back to
// its zero value and is listed in the snapshot's Errors; the snapshot status
// is "error" only when all stages failed.
//
// Returns ErrNoDeviceConfigured if no firewall can be resolved.
func (d *dashboardService) Throughput(ctx context.Context) (models.ThroughputSnapshot, error) {
	started := d.clock.Now()
	defer observePoll(pollThroughput, started, d.clock)

	active, err := d.resolve(ctx)
	if err != nil {
		return models.ThroughputSnapshot{}, err
	}
	log := logger.FromContext(ctx).WithDevice(active.key)

	snapshot := models.ThroughputSnapshot{
		Status:    models.StatusSuccess,
		Timestamp: started.UTC(),
		DeviceKey: active.key,
		Interface: active.iface,
		Interfaces: models.InterfaceErrors{
			Interfaces: []models.InterfaceError{},
		},
		License: models.LicenseSummary{
			Licenses: []models.LicenseEntry{},
		},
	}
	stages := 0
	fail := func(stage string, err error) {
		metrics.PollStageFailures.WithLabelValues(stage).Inc()
		log.Warn().Err(err).Str("stage", stage).Msg("poll stage failed")
		snapshot.Errors = append(snapshot.Errors, stage)
	}

	stages++
	counters, err := d.client.InterfaceCounters(ctx, active.target, active.iface)
	if err != nil {
		fail(StageThroughput, err)
	} else {
		snapshot.RateResult = d.sample(active.key, active.iface, counters)
		d.touch(ctx, active)
	}

	if active.wanInterface != "" && active.wanInterface != active.iface {
		stages++
		wan, err := d.client.InterfaceCounters(ctx, active.target, active.wanInterface)
		if err != nil {
			fail(StageWANThroughput, err)
		} else {
			snapshot.WAN = &models.WANThroughput{
				Interface:  active.wanInterface,
				RateResult: d.sample(active.key+"/"+active.wanInterface, active.wanInterface, wan),
			}
		}
	}

	stages++
	if sessions, err := d.client.SessionInfo(ctx, active.target); err != nil {
		fail(StageSessions, err)
	} else {
		snapshot.Sessions = sessions
	}

	stages++
	if resources, err := d.client.SystemResources(ctx, active.target); err != nil {
		fail(StageResources, err)
	} else {
		snapshot.CPU = resources
	}

	stages++
	if ifErrors, err := d.client.InterfaceErrors(ctx, active.target); err != nil {
		fail(StageInterfaces, err)
	} else {
		if ifErrors.Interfaces == nil {
			ifErrors.Interfaces = []models.InterfaceError{}
		}
		snapshot.Interfaces = ifErrors
	}

	stages++
	if license, err := d.client.LicenseInfo(ctx, active.target); err != nil {
		fail(StageLicense, err)
	} else {
		if license.Licenses == nil {
			license.Licenses = []models.LicenseEntry{}
		}
		snapshot.License = license
	}

	if len(snapshot.Errors) == stages {
		snapshot.Status = models.StatusError
	}
	snapshot.APIStats = d.calls.Snapshot()

	log.Debug().
		Float64("total_mbps", snapshot.TotalMbps).
		Strs("failed_stages", snapshot.Errors).
		Msg("throughput poll finished")
	return snapshot, nil
}

// Policies returns the hit counts of every security rule, most hit first.
// Hit counts that cannot be read are reported as zero; failing to list the
// rules fails the poll with ErrFirewallQueryFailed.
func (d *dashboardService) Policies(ctx context.Context) (models.PolicySnapshot, error) {
	started := d.clock.Now()
	defer observePoll(pollPolicies, started, d.clock)

	active, err := d.resolve(ctx)
	if err != nil {
		return models.PolicySnapshot{}, err
	}
	log := logger.FromContext(ctx).WithDevice(active.key)

	rules, err := d.client.SecurityRules(ctx, active.target)
	if err != nil {
		log.Error().Err(err).Msg("failed to list security rules")
		return models.PolicySnapshot{}, fmt.Errorf("%w: %w", ErrFirewallQueryFailed, err)
	}

	hits, err := d.client.RuleHitCounts(ctx, active.target, rules)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read rule hit counts")
		hits = nil
	}

	policies := make([]models.PolicyHitCount, 0, len(rules))
	for _, rule := range rules {
		hit, ok := hits[rule]
		if !ok {
			hit = models.RuleHit{LatestHit: notAvailable, FirstHit: notAvailable}
		}
		policies = append(policies, models.PolicyHitCount{
			Name:      rule,
			HitCount:  hit.HitCount,
			LatestHit: hit.LatestHit,
			FirstHit:  hit.FirstHit,
			Type:      policyTypeSecurity,
			Trend:     d.trends.Observe(active.key+"/"+rule, hit.HitCount),
		})
	}
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].HitCount > policies[j].HitCount
	})

	return models.PolicySnapshot{
		Status:    models.StatusSuccess,
		Timestamp: started.UTC(),
		Policies:  policies,
		Total:     len(policies),
	}, nil
}

func (d *dashboardService) License(ctx context.Context) (models.LicenseSnapshot, error) {
	started := d.clock.Now()
	defer observePoll(pollLicense, started, d.clock)

	active, err := d.resolve(ctx)
	if err != nil {
		return models.LicenseSnapshot{}, err
	}

	license, err := d.client.LicenseInfo(ctx, active.target)
	if err != nil {
		logger.FromContext(ctx).WithDevice(active.key).Error().Err(err).Msg("failed to read licenses")
		return models.LicenseSnapshot{}, fmt.Errorf("%w: %w", ErrFirewallQueryFailed, err)
	}
	if license.Licenses == nil {
		license.Licenses = []models.LicenseEntry{}
	}

	return models.LicenseSnapshot{
		Status:    models.StatusSuccess,
		Timestamp: started.UTC(),
		License:   license,
	}, nil
}

func (d *dashboardService) APIStats(ctx context.Context) models.APIStats {
	return d.calls.Snapshot()
}

// resolve picks the firewall to poll, in order: the selected enabled
// device, the legacy address from the configuration, the first enabled
// device.
func (d *dashboardService) resolve(ctx context.Context) (activeTarget, error) {
	log := logger.FromContext(ctx)

	settings, err := d.settings.LoadSettings(ctx)
	if err != nil {
		return activeTarget{}, fmt.Errorf("error loading settings: %w", err)
	}

	if settings.SelectedDeviceID != "" {
		device, err := d.devices.GetDevice(ctx, settings.SelectedDeviceID, true)
		switch {
		case errors.Is(err, store.ErrDeviceNotFound):
			log.Warn().Str("device_id", settings.SelectedDeviceID).Msg("selected device no longer exists")
		case err != nil:
			return activeTarget{}, fmt.Errorf("error loading selected device: %w", err)
		case !device.Enabled:
			log.Debug().Str("device_id", device.ID).Msg("selected device is disabled")
		case device.APIKey == "":
			log.Warn().Str("device_id", device.ID).Msg("selected device has no usable api key")
		default:
			return d.deviceTarget(device, settings), nil
		}
	}

	if d.legacy.LegacyAddress != "" && d.legacy.LegacyAPIKey != "" {
		return activeTarget{
			key:    d.legacy.LegacyAddress,
			target: models.FirewallTarget{Address: d.legacy.LegacyAddress, APIKey: d.legacy.LegacyAPIKey},
			iface:  interfaceOr(settings.MonitoredInterface, models.DefaultMonitoredInterface),
		}, nil
	}

	devices, err := d.devices.ListDevices(ctx, true)
	if err != nil {
		return activeTarget{}, fmt.Errorf("error listing devices: %w", err)
	}
	for _, device := range devices {
		if device.Enabled && device.APIKey != "" {
			return d.deviceTarget(device, settings), nil
		}
	}

	return activeTarget{}, ErrNoDeviceConfigured
}

func (d *dashboardService) deviceTarget(device models.Device, settings models.Settings) activeTarget {
	return activeTarget{
		key:          device.ID,
		deviceID:     device.ID,
		target:       models.FirewallTarget{Address: device.Address, APIKey: device.APIKey},
		iface:        interfaceOr(device.MonitoredInterface, interfaceOr(settings.MonitoredInterface, models.DefaultMonitoredInterface)),
		wanInterface: device.WANInterface,
	}
}

// sample feeds counters into the rate tracker and mirrors the result into
// the throughput gauges.
func (d *dashboardService) sample(key, iface string, counters models.InterfaceCounters) models.RateResult {
	rate := d.rates.Sample(key, counters, d.clock.Now())
	if rate.CounterReset {
		metrics.CounterResets.WithLabelValues(key).Inc()
	}
	if !rate.FirstSample {
		metrics.ThroughputMbps.WithLabelValues(key, iface, "in").Set(rate.InboundMbps)
		metrics.ThroughputMbps.WithLabelValues(key, iface, "out").Set(rate.OutboundMbps)
	}
	return rate
}

// touch stamps last_seen of a registered device at most once per
// lastSeenInterval.
func (d *dashboardService) touch(ctx context.Context, active activeTarget) {
	if active.deviceID == "" {
		return
	}
	now := d.clock.Now()

	d.touchMu.Lock()
	last, ok := d.lastTouched[active.deviceID]
	if ok && now.Sub(last) < lastSeenInterval {
		d.touchMu.Unlock()
		return
	}
	d.lastTouched[active.deviceID] = now
	d.touchMu.Unlock()

	if err := d.devices.TouchDevice(ctx, active.deviceID, now); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("device_id", active.deviceID).Msg("failed to update last_seen")
	}
}

func interfaceOr(iface, fallback string) string {
	if iface != "" {
		return iface
	}
	return fallback
}

func observePoll(kind string, started time.Time, clock utils.Clock) {
	metrics.PollDuration.WithLabelValues(kind).Observe(clock.Now().Sub(started).Seconds())
}
