package signal

import (
	"fmt"
	"regexp"

	"github.com/felixgeelhaar/driftscope/internal/config"
	"github.com/felixgeelhaar/driftscope/internal/entity"
)

// FilterIgnored drops signals matched by an ignore rule. A rule without a
// pattern suppresses its whole drift type; with a pattern it suppresses only
// signals whose entity name matches the regular expression. A rule with an
// invalid pattern is skipped, never treated as match-all, and reported in
// the returned warnings.
func FilterIgnored(signals []entity.DriftSignal, rules []config.IgnoreRule) ([]entity.DriftSignal, []string) {
	if len(rules) == 0 {
		return signals, nil
	}

	type compiledRule struct {
		driftType entity.DriftType
		pattern   *regexp.Regexp
	}

	var compiled []compiledRule
	var warnings []string
	for _, rule := range rules {
		cr := compiledRule{driftType: rule.Type}
		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				warnings = append(warnings,
					fmt.Sprintf("ignore rule for %s skipped: invalid pattern %q: %v", rule.Type, rule.Pattern, err))
				continue
			}
			cr.pattern = re
		}
		compiled = append(compiled, cr)
	}

	kept := make([]entity.DriftSignal, 0, len(signals))
	for _, sig := range signals {
		ignored := false
		for _, rule := range compiled {
			if rule.driftType != sig.Type {
				continue
			}
			if rule.pattern == nil || rule.pattern.MatchString(sig.Source.EntityName) {
				ignored = true
				break
			}
		}
		if !ignored {
			kept = append(kept, sig)
		}
	}
	return kept, warnings
}
