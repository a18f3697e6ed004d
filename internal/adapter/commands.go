package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/csmblade/PANfm/models"
)

// Operational commands issued through the XML API.
const (
	cmdSystemInfo       = "<show><system><info></info></system></show>"
	cmdSystemResources  = "<show><system><resources></resources></system></show>"
	cmdResourceMonitor  = "<show><running><resource-monitor></resource-monitor></running></show>"
	cmdSessionInfo      = "<show><session><info></info></session></show>"
	cmdAllCounters      = "<show><counter><interface>all</interface></counter></show>"
	cmdLicenseInfo      = "<request><license><info></info></license></request>"
	cmdInterfaceCounter = "<show><counter><interface>%s</interface></counter></show>"
	cmdRuleHitCount     = "<show><rule-hit-count><vsys><vsys-name><entry name='%s'><rule-base><entry name='security'><rules><list>%s</list></rules></entry></rule-base></entry></vsys-name></vsys></rule-hit-count></show>"
)

// Defaults for fields the firewall omits.
const (
	notAvailable   = "N/A"
	unknownFeature = "Unknown"
	securityType   = "security"
)

// SystemInfo implements [FirewallClient].
func (c *panosClient) SystemInfo(ctx context.Context, target models.FirewallTarget) (models.SystemInfo, error) {
	root, err := c.op(ctx, target, "system-info", cmdSystemInfo)
	if err != nil {
		return models.SystemInfo{}, err
	}
	return parseSystemInfo(root), nil
}

func parseSystemInfo(root *xmlNode) models.SystemInfo {
	return models.SystemInfo{
		Hostname:  root.descendantText("hostname"),
		Model:     root.descendantText("model"),
		Serial:    root.descendantText("serial"),
		SWVersion: root.descendantText("sw-version"),
		Uptime:    root.descendantText("uptime"),
		IPAddress: root.descendantText("ip-address"),
	}
}

// InterfaceCounters implements [FirewallClient].
func (c *panosClient) InterfaceCounters(ctx context.Context, target models.FirewallTarget, iface string) (models.InterfaceCounters, error) {
	root, err := c.op(ctx, target, "interface-counters", fmt.Sprintf(cmdInterfaceCounter, escapeXML(iface)))
	if err != nil {
		return models.InterfaceCounters{}, err
	}
	return parseInterfaceCounters(root, iface)
}

func parseInterfaceCounters(root *xmlNode, iface string) (models.InterfaceCounters, error) {
	for _, entry := range root.descendants("entry") {
		if entry.childText("name") != iface {
			continue
		}
		return models.InterfaceCounters{
			Name:     iface,
			InBytes:  parseUint(entry.childText("ibytes")),
			OutBytes: parseUint(entry.childText("obytes")),
			InPkts:   parseUint(entry.childText("ipackets")),
			OutPkts:  parseUint(entry.childText("opackets")),
		}, nil
	}
	return models.InterfaceCounters{}, fmt.Errorf("%w: %s", ErrInterfaceNotFound, iface)
}

// InterfaceErrors implements [FirewallClient].
func (c *panosClient) InterfaceErrors(ctx context.Context, target models.FirewallTarget) (models.InterfaceErrors, error) {
	root, err := c.op(ctx, target, "interface-errors", cmdAllCounters)
	if err != nil {
		return models.InterfaceErrors{Interfaces: []models.InterfaceError{}}, err
	}
	return parseInterfaceErrors(root), nil
}

func parseInterfaceErrors(root *xmlNode) models.InterfaceErrors {
	result := models.InterfaceErrors{Interfaces: []models.InterfaceError{}}

	for _, ifnet := range root.descendants("ifnet") {
		for _, entry := range ifnet.path("entry") {
			if entry.child("name") == nil {
				continue
			}
			ierrors := parseInt(entry.childText("ierrors"))
			oerrors := parseInt(entry.childText("oerrors"))
			idrops := parseInt(entry.childText("idrops"))

			result.TotalErrors += ierrors + oerrors
			result.TotalDrops += idrops

			if ierrors > 0 || oerrors > 0 || idrops > 0 {
				result.Interfaces = append(result.Interfaces, models.InterfaceError{
					Name:        entry.childText("name"),
					InErrors:    ierrors,
					OutErrors:   oerrors,
					InDrops:     idrops,
					TotalErrors: ierrors + oerrors,
				})
			}
		}
	}
	return result
}

// SessionInfo implements [FirewallClient].
func (c *panosClient) SessionInfo(ctx context.Context, target models.FirewallTarget) (models.SessionCounts, error) {
	root, err := c.op(ctx, target, "session-info", cmdSessionInfo)
	if err != nil {
		return models.SessionCounts{}, err
	}
	return models.SessionCounts{
		Active: parseInt(root.descendantText("num-active")),
		TCP:    parseInt(root.descendantText("num-tcp")),
		UDP:    parseInt(root.descendantText("num-udp")),
		ICMP:   parseInt(root.descendantText("num-icmp")),
	}, nil
}

// SystemResources implements [FirewallClient]. The data-plane CPU comes from
// the resource monitor, falling back to dp-cpu-utilization; management CPU
// and memory are parsed from the top(1) output embedded in the system
// resources response; uptime comes from system info.
func (c *panosClient) SystemResources(ctx context.Context, target models.FirewallTarget) (models.SystemResources, error) {
	var (
		res  models.SystemResources
		errs []error
	)

	if root, err := c.op(ctx, target, "resource-monitor", cmdResourceMonitor); err != nil {
		errs = append(errs, err)
	} else {
		res.DataPlaneCPU = parseDataPlaneCPU(root)
	}

	if root, err := c.op(ctx, target, "system-resources", cmdSystemResources); err != nil {
		errs = append(errs, err)
	} else {
		if res.DataPlaneCPU == 0 {
			res.DataPlaneCPU = int(parseInt(root.descendantText("dp-cpu-utilization")))
		}
		parseTopOutput(root.descendantText("result"), &res)
	}

	if root, err := c.op(ctx, target, "system-info", cmdSystemInfo); err != nil {
		errs = append(errs, err)
	} else {
		res.Uptime = root.descendantText("uptime")
	}

	if len(errs) == 3 {
		return models.SystemResources{}, errors.Join(errs...)
	}
	return res, nil
}

// parseDataPlaneCPU averages the one-minute load of every core of every data
// processor. If that yields zero it averages the per-entry means of dp0's
// per-second samples instead.
func parseDataPlaneCPU(root *xmlNode) int {
	var sum, count int64
	for _, processors := range root.descendants("data-processors") {
		for _, dp := range processors.path("*") {
			for _, minute := range dp.descendants("minute") {
				for _, value := range minute.path("cpu-load-average", "entry", "value") {
					values, ok := parseIntList(value.text())
					if !ok {
						continue
					}
					for _, v := range values {
						sum += v
						count++
					}
				}
			}
		}
	}
	if count > 0 && sum/count > 0 {
		return int(sum / count)
	}

	var total float64
	var entries int
	for _, processors := range root.descendants("data-processors") {
		for _, value := range processors.path("dp0", "second", "cpu-load-average", "entry", "value") {
			values, ok := parseIntList(value.text())
			if !ok || len(values) == 0 {
				continue
			}
			var s int64
			for _, v := range values {
				s += v
			}
			total += float64(s) / float64(len(values))
			entries++
		}
	}
	if entries == 0 {
		return 0
	}
	return int(total / float64(entries))
}

// parseTopOutput extracts management CPU (user + system) and memory usage
// from the top(1) snapshot PAN-OS returns as the result text, e.g.
//
//	%Cpu(s):  2.1 us,  1.0 sy,  0.0 ni, 96.7 id, ...
//	MiB Mem :   7947.8 total,   1234.5 free,   4567.8 used,   2145.5 buff/cache
func parseTopOutput(text string, res *models.SystemResources) {
	for _, line := range strings.Split(text, "\n") {
		if _, after, ok := strings.Cut(line, "Cpu(s):"); ok {
			var user, sys float64
			for _, part := range strings.Split(after, ",") {
				value, label, ok := splitTopField(part)
				if !ok {
					continue
				}
				switch label {
				case "us":
					user = value
				case "sy":
					sys = value
				}
			}
			res.MgmtPlaneCPU = int(user + sys)
			continue
		}

		if label, after, ok := strings.Cut(line, ":"); ok && strings.Contains(label, "Mem") && strings.Contains(after, "total") {
			var total, used float64
			for _, part := range strings.Split(after, ",") {
				value, field, ok := splitTopField(part)
				if !ok {
					continue
				}
				switch field {
				case "total":
					total = value
				case "used":
					used = value
				}
			}
			if total > 0 {
				res.MemoryTotalMB = int(total)
				res.MemoryUsedMB = int(used)
				res.MemoryUsedPct = int(used / total * 100)
			}
		}
	}
}

// splitTopField splits "  2.1 us" into its value and label.
func splitTopField(part string) (float64, string, bool) {
	fields := strings.Fields(part)
	if len(fields) != 2 {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", false
	}
	return value, fields[1], true
}

// LicenseInfo implements [FirewallClient].
func (c *panosClient) LicenseInfo(ctx context.Context, target models.FirewallTarget) (models.LicenseSummary, error) {
	root, err := c.op(ctx, target, "license-info", cmdLicenseInfo)
	if err != nil {
		return models.LicenseSummary{Licenses: []models.LicenseEntry{}}, err
	}
	return parseLicenses(root), nil
}

func parseLicenses(root *xmlNode) models.LicenseSummary {
	summary := models.LicenseSummary{Licenses: []models.LicenseEntry{}}

	for _, entry := range root.descendants("entry") {
		license := models.LicenseEntry{
			Feature:     valueOr(entry.descendantText("feature"), unknownFeature),
			Description: entry.descendantText("description"),
			Expires:     valueOr(entry.descendantText("expires"), notAvailable),
			Expired:     valueOr(entry.descendantText("expired"), "no"),
		}

		if strings.EqualFold(license.Expired, "yes") {
			summary.Expired++
		} else {
			summary.Licensed++
		}
		summary.Licenses = append(summary.Licenses, license)
	}
	return summary
}

// securityRulesResponse covers both layouts of the policies REST API: the
// entries are either wrapped in "result" or at the top level, and the rule
// name is either "@name" or "name".
type securityRulesResponse struct {
	Result struct {
		Entry []securityRuleEntry `json:"entry"`
	} `json:"result"`
	Entry []securityRuleEntry `json:"entry"`
}

type securityRuleEntry struct {
	AtName string `json:"@name"`
	Name   string `json:"name"`
}

func (e securityRuleEntry) ruleName() string {
	if e.AtName != "" {
		return e.AtName
	}
	return e.Name
}

// SecurityRules implements [FirewallClient].
func (c *panosClient) SecurityRules(ctx context.Context, target models.FirewallTarget) ([]string, error) {
	var body securityRulesResponse
	params := map[string]string{"location": "vsys", "vsys": defaultVsys}
	if err := c.rest(ctx, target, "security-rules", securityRulesPath, params, &body); err != nil {
		return nil, err
	}

	entries := body.Result.Entry
	if len(entries) == 0 {
		entries = body.Entry
	}

	rules := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name := entry.ruleName(); name != "" {
			rules = append(rules, name)
		}
	}
	return rules, nil
}

// RuleHitCounts implements [FirewallClient].
func (c *panosClient) RuleHitCounts(ctx context.Context, target models.FirewallTarget, rules []string) (map[string]models.RuleHit, error) {
	hits := make(map[string]models.RuleHit, len(rules))
	if len(rules) == 0 {
		return hits, nil
	}

	var members strings.Builder
	for _, rule := range rules {
		members.WriteString("<member>")
		members.WriteString(escapeXML(rule))
		members.WriteString("</member>")
	}

	root, err := c.op(ctx, target, "rule-hit-count", fmt.Sprintf(cmdRuleHitCount, defaultVsys, members.String()))
	if err != nil {
		return nil, err
	}
	if status := root.attr("status"); status != "success" {
		return nil, fmt.Errorf("%w: rule-hit-count: status %q", ErrCommandFailed, status)
	}

	return parseRuleHits(root), nil
}

func parseRuleHits(root *xmlNode) map[string]models.RuleHit {
	var entries []*xmlNode
	for _, container := range []string{"rule", "rules"} {
		for _, node := range root.descendants(container) {
			entries = append(entries, node.path("entry")...)
		}
		if len(entries) > 0 {
			break
		}
	}
	if len(entries) == 0 {
		entries = root.descendants("entry")
	}

	hits := make(map[string]models.RuleHit, len(entries))
	for _, entry := range entries {
		name := entry.attr("name")
		count := entry.child("hit-count")
		if name == "" || count == nil {
			continue
		}
		hits[name] = models.RuleHit{
			HitCount:  parseInt(count.text()),
			LatestHit: valueOr(entry.firstChildText("last-hit-timestamp", "latest-hit", "last-hit", "latest"), notAvailable),
			FirstHit:  valueOr(entry.firstChildText("first-hit-timestamp", "first-hit", "first"), notAvailable),
		}
	}
	return hits
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
