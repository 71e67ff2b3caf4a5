package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/devcards/branch-langs/catalog"
	"github.com/devcards/branch-langs/config"
	"github.com/devcards/branch-langs/model"
	"github.com/devcards/branch-langs/stats"
	"github.com/google/go-github/v66/github"

	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"

	"golang.org/x/time/rate"
)

const (
	listPageSize = 100
	listPageCap  = 5

	treeRetryLimit   = 2
	treeRetryBackoff = 500 * time.Millisecond
)

type GithubService interface {
	ListOwnedRepositories(ctx context.Context, user string, includeForks bool, includeArchived bool) ([]model.RepositoryRef, error)
	ResolveBranchTree(ctx context.Context, owner string, repo string, branch string) ([]model.TreeEntry, error)
	AggregateAcrossRepositories(ctx context.Context, refs []model.RepositoryRef, branch string) (model.LanguageTotals, []model.RepositoryFailure, bool, error)
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	languageCatalog   *catalog.Catalog
	config            config.Config
}

// NewGithubService builds the service around an injected github client so
// tests can swap in a mock transport
// the rate limiter mirrors the remote budget: 5000 requests per hour for
// authenticated clients, each repository costs two requests (branch + tree)
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter, languageCatalog *catalog.Catalog) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		languageCatalog:   languageCatalog,
		config:            config,
	}
}

// ListOwnedRepositories pages through the repositories owned by user, most
// recently updated first, and stops on an empty page or after the page cap
// fork and archive filters are applied per page after fetching
func (s githubService) ListOwnedRepositories(ctx context.Context, user string, includeForks bool, includeArchived bool) ([]model.RepositoryRef, error) {
	refs := make([]model.RepositoryRef, 0)

	for page := 1; page <= listPageCap; page++ {
		if !s.githubRateLimiter.Allow() {
			log.Warning("the github rate limit has been reached. use a token or wait until the limit reset")
			return nil, model.ErrRateLimited
		}

		log.WithFields(log.Fields{
			"user": user,
			"page": page,
		}).Debug("fetch owned repositories page from github")

		repos, resp, err := s.githubClient.Repositories.ListByUser(
			ctx,
			user,
			&github.RepositoryListByUserOptions{
				Type:      "owner",
				Sort:      "updated",
				Direction: "desc",
				ListOptions: github.ListOptions{
					Page:    page,
					PerPage: listPageSize,
				},
			},
		)

		if err != nil {
			return nil, s.handleRequestError(model.UpstreamList, resp, err)
		}

		if len(repos) == 0 {
			break
		}

		for _, r := range repos {
			if r.GetFork() && !includeForks {
				continue
			}

			if r.GetArchived() && !includeArchived {
				continue
			}

			refs = append(refs, model.RepositoryRef{
				FullName:   r.GetFullName(),
				Owner:      r.GetOwner().GetLogin(),
				Repository: r.GetName(),
				IsFork:     r.GetFork(),
				IsArchived: r.GetArchived(),
			})
		}
	}

	log.WithFields(log.Fields{
		"user":  user,
		"found": len(refs),
	}).Info("repository discovery finished")

	return refs, nil
}

// ResolveBranchTree resolves branch to its tip commit and fetches the full
// recursive tree for it
// a missing branch or an empty repository yields an empty tree and no error,
// so the repository is silently skipped from aggregation
func (s githubService) ResolveBranchTree(ctx context.Context, owner string, repo string, branch string) ([]model.TreeEntry, error) {
	if !s.githubRateLimiter.AllowN(time.Now(), 2) {
		log.Warning("the github rate limit has been reached. use a token or wait until the limit reset")
		return nil, model.ErrRateLimited
	}

	var tip *github.Branch
	var branchResp *github.Response

	err := s.withRetry(ctx, func() (*github.Response, error) {
		var err error
		tip, branchResp, err = s.githubClient.Repositories.GetBranch(ctx, owner, repo, branch, 0)
		return branchResp, err
	})

	if err != nil {
		if responseStatus(branchResp, err) == http.StatusNotFound {
			log.WithFields(log.Fields{
				"repository": owner + "/" + repo,
				"branch":     branch,
			}).Debug("branch not found. repository skipped")
			return []model.TreeEntry{}, nil
		}

		return nil, s.handleRequestError(model.UpstreamTree, branchResp, err)
	}

	sha := tip.GetCommit().GetSHA()

	var tree *github.Tree
	var treeResp *github.Response

	err = s.withRetry(ctx, func() (*github.Response, error) {
		var err error
		tree, treeResp, err = s.githubClient.Git.GetTree(ctx, owner, repo, sha, true)
		return treeResp, err
	})

	if err != nil {
		if responseStatus(treeResp, err) == http.StatusConflict {
			log.WithField("repository", owner+"/"+repo).Debug("empty repository. skipped")
			return []model.TreeEntry{}, nil
		}

		return nil, s.handleRequestError(model.UpstreamTree, treeResp, err)
	}

	entries := make([]model.TreeEntry, 0, len(tree.Entries))

	for _, e := range tree.Entries {
		entries = append(entries, model.TreeEntry{
			Path: e.GetPath(),
			Type: e.GetType(),
			Size: e.Size,
		})
	}

	return entries, nil
}

// AggregateAcrossRepositories resolves every repository on branch through a
// bounded worker pool and folds the per repository totals into a grand total
// a failing repository is recorded and skipped rather than poisoning the
// whole batch, the call only errors when no repository could be resolved
// the returned flag reports whether the context expired before every
// repository was processed
func (s githubService) AggregateAcrossRepositories(ctx context.Context, refs []model.RepositoryRef, branch string) (model.LanguageTotals, []model.RepositoryFailure, bool, error) {
	swg := sizedwaitgroup.New(s.config.Tasks.MaxParallelTasksAllowed)
	results := make(chan repositoryResult, len(refs))

	truncated := false
	submitted := 0

	log.WithFields(log.Fields{
		"repositories": len(refs),
		"branch":       branch,
		"parallelism":  s.config.Tasks.MaxParallelTasksAllowed,
	}).Debug("will resolve branch trees for all repositories")

	for _, ref := range refs {
		if ctx.Err() != nil {
			truncated = true
			break
		}

		swg.Add()
		submitted++
		go s.aggregateSingleRepository(ctx, ref, branch, &swg, results)
	}

	log.Debug("waiting for all repository resolutions to be finished")
	swg.Wait()
	close(results)

	grandTotal := make(model.LanguageTotals)
	failures := make([]model.RepositoryFailure, 0)

	var firstErr error

	for result := range results {
		if result.err != nil {
			if errors.Is(result.err, context.Canceled) || errors.Is(result.err, context.DeadlineExceeded) {
				truncated = true
				continue
			}

			log.WithFields(log.Fields{
				"repository": result.repository,
			}).WithError(result.err).Warning("repository resolution failed. skipped from aggregation")

			failures = append(failures, model.RepositoryFailure{
				Repository: result.repository,
				Reason:     result.err.Error(),
			})

			if firstErr == nil {
				firstErr = result.err
			}

			continue
		}

		stats.MergeTotals(grandTotal, result.totals)
	}

	if submitted > 0 && len(failures) == submitted {
		return nil, failures, truncated, firstErr
	}

	return grandTotal, failures, truncated, nil
}

type repositoryResult struct {
	repository string
	totals     model.LanguageTotals
	err        error
}

// aggregateSingleRepository resolves one repository tree and classifies its
// blobs into per language byte totals
// each worker owns its totals map, the reducer in the parent does the fold
func (s githubService) aggregateSingleRepository(ctx context.Context, ref model.RepositoryRef, branch string, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- repositoryResult) {
	defer swg.Done()

	entries, err := s.ResolveBranchTree(ctx, ref.Owner, ref.Repository, branch)

	if err != nil {
		ch <- repositoryResult{repository: ref.FullName, err: err}
		return
	}

	totals := stats.AggregateTree(entries, s.languageCatalog.Classify)

	log.WithFields(log.Fields{
		"repository": ref.FullName,
		"languages":  len(totals),
	}).Debug("repository aggregated")

	ch <- repositoryResult{repository: ref.FullName, totals: totals}
}

// withRetry runs call and retries transient upstream failures (429 and 5xx)
// with exponential backoff, other failures are returned as is
func (s githubService) withRetry(ctx context.Context, call func() (*github.Response, error)) error {
	backoff := treeRetryBackoff

	for attempt := 0; ; attempt++ {
		resp, err := call()

		if err == nil {
			return nil
		}

		status := responseStatus(resp, err)

		if attempt >= treeRetryLimit || (status != http.StatusTooManyRequests && status < http.StatusInternalServerError) {
			return err
		}

		log.WithFields(log.Fields{
			"status":  status,
			"attempt": attempt + 1,
			"backoff": backoff.String(),
		}).Debug("transient github failure, will retry")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
	}
}

// handleRequestError converts github client errors into the service taxonomy
// a remote rate limit error also drains the local limiter to keep it in sync
func (s githubService) handleRequestError(kind model.UpstreamErrorKind, resp *github.Response, err error) error {
	if _, ok := err.(*github.RateLimitError); ok {
		s.githubRateLimiter.AllowN(time.Now(), s.githubRateLimiter.Burst())

		log.Warning("the github rate limit has been reached. use a token or wait until the limit reset")
		return model.ErrRateLimited
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	body := err.Error()

	var errResp *github.ErrorResponse

	if errors.As(err, &errResp) {
		body = errResp.Message
	}

	log.WithError(err).Error("error catched when fetching data from github")

	return &model.UpstreamError{
		Kind:       kind,
		StatusCode: responseStatus(resp, err),
		Body:       body,
	}
}

// responseStatus extracts the HTTP status of a failed github call, 0 when the
// failure never reached the server
// some client methods (GetBranch among them) fail with a bare error instead
// of an ErrorResponse, so the response is checked first
func responseStatus(resp *github.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.Response.StatusCode
	}

	var errResp *github.ErrorResponse

	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}

	var rateErr *github.RateLimitError

	if errors.As(err, &rateErr) {
		return http.StatusForbidden
	}

	return 0
}
