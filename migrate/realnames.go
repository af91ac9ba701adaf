// Package migrate rewrites placeholder identities in place while
// preserving global email uniqueness across users and their EMAIL
// provider accounts.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	"github.com/thanhtai05/task-manager/model"
	"github.com/thanhtai05/task-manager/seed"
)

// placeholderNamePattern is also handed to the store's candidate query,
// so it must stay a valid pattern in both dialects.
const placeholderNamePattern = `^(User \d+|Demo User)$`

var (
	placeholderNameRe  = regexp.MustCompile(`(?i)` + placeholderNamePattern)
	numberedEmailRe    = regexp.MustCompile(`(?i)^user\d+@example\.com$`)
	demoEmailRe        = regexp.MustCompile(`(?i)^demo@example\.com$`)
	exampleDomainRe    = regexp.MustCompile(`(?i)@example\.(com|vn)$`)
	canonicalDomainSfx = "@" + seed.EmailDomain
)

// Result summarizes a migration run.
type Result struct {
	Candidates int
	Changed    int
}

func isPlaceholderName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}
	return placeholderNameRe.MatchString(trimmed)
}

func isPlaceholderEmail(email string) bool {
	if email == "" {
		return false
	}
	return numberedEmailRe.MatchString(email) ||
		demoEmailRe.MatchString(email) ||
		exampleDomainRe.MatchString(email)
}

// RealNames scans users for placeholder identities and rewrites them.
// Fully-placeholder identities get a brand-new synthesized person;
// identities that only carry a foreign email domain keep their
// slugified local part and move to the canonical domain, with a numeric
// suffix on collision. A record the migrator cannot classify is left
// untouched, never treated as an error. Exhausting the synthesis retry
// budget aborts the whole run.
func RealNames(ctx context.Context, st data.Store, rng *rand.Rand, maxAttempts int) (*Result, error) {
	log := logger.Standard().WithField("component", "migrate-realnames")

	// Exclusion set: every email currently in use, from users and from
	// EMAIL provider accounts.
	userEmails, err := st.ListUserEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate realnames: %w", err)
	}
	providerIDs, err := st.ListProviderIDs(ctx, model.ProviderEmail)
	if err != nil {
		return nil, fmt.Errorf("migrate realnames: %w", err)
	}
	used := make(map[string]struct{}, len(userEmails)+len(providerIDs))
	for _, e := range userEmails {
		if e != "" {
			used[strings.ToLower(e)] = struct{}{}
		}
	}
	for _, e := range providerIDs {
		if e != "" {
			used[strings.ToLower(e)] = struct{}{}
		}
	}

	candidates, err := st.ListIdentityCandidates(ctx, seed.EmailDomain, placeholderNamePattern)
	if err != nil {
		return nil, fmt.Errorf("migrate realnames: %w", err)
	}
	log.Infof("candidates found: %d", len(candidates))

	changed := 0
	for _, user := range candidates {
		onCanonicalDomain := strings.HasSuffix(strings.ToLower(user.Email), canonicalDomainSfx)
		shouldChangeEmail := (user.Email != "" && !onCanonicalDomain) || isPlaceholderEmail(user.Email)
		shouldChangeName := isPlaceholderName(user.Name)
		if !shouldChangeEmail && !shouldChangeName {
			continue
		}

		beforeName, beforeEmail := user.Name, user.Email

		var newEmail string
		newName := user.Name
		if isPlaceholderEmail(user.Email) || shouldChangeName {
			// Nothing of the identity is worth keeping: synthesize a
			// whole new person against the exclusion set.
			person, err := seed.UniquePerson(rng, used, maxAttempts)
			if err != nil {
				return nil, fmt.Errorf("migrate realnames: %w", err)
			}
			newName = person.FullName
			newEmail = strings.ToLower(person.Email)
		} else {
			// Keep the local part, normalize the domain.
			local := seed.Slugify(strings.SplitN(user.Email, "@", 2)[0])
			if local == "" {
				local = seed.Slugify(newName)
			}
			if local == "" {
				local = "user"
			}
			candidate := local + canonicalDomainSfx
			for n := 1; ; n++ {
				if _, taken := used[strings.ToLower(candidate)]; !taken {
					break
				}
				candidate = fmt.Sprintf("%s%d%s", local, n, canonicalDomainSfx)
			}
			newEmail = strings.ToLower(candidate)
		}

		// Claim the email before persisting so no later candidate in
		// this run can draw it again.
		used[newEmail] = struct{}{}

		if shouldChangeName {
			user.Name = newName
		}
		if shouldChangeEmail {
			user.Email = newEmail
		}
		if err := st.SaveUser(ctx, user); err != nil {
			return nil, fmt.Errorf("migrate realnames: %w", err)
		}

		if shouldChangeEmail {
			account, err := st.FindAccountByUser(ctx, user.ID, model.ProviderEmail)
			switch {
			case err == nil:
				account.ProviderID = user.Email
				if err := st.SaveAccount(ctx, account); err != nil {
					return nil, fmt.Errorf("migrate realnames: %w", err)
				}
			case !errors.Is(err, data.ErrNotFound):
				return nil, fmt.Errorf("migrate realnames: %w", err)
			}
		}

		changed++
		log.WithFields(map[string]any{
			"user":         user.ID.Hex(),
			"name_before":  beforeName,
			"name_after":   user.Name,
			"email_before": beforeEmail,
			"email_after":  user.Email,
		}).Info("user identity updated")
	}

	log.Infof("migration completed, users changed: %d", changed)
	return &Result{Candidates: len(candidates), Changed: changed}, nil
}
