package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/devcards/branch-langs/catalog"
	"github.com/devcards/branch-langs/config"
	"github.com/devcards/branch-langs/model"
	"github.com/devcards/branch-langs/render"
	"github.com/devcards/branch-langs/service"
	"github.com/devcards/branch-langs/stats"
	"github.com/gin-gonic/gin"
)

const (
	minRepos       = 1
	maxRepos       = 300
	cacheDirective = "public, max-age=1800, s-maxage=1800"
)

type APIController interface {
	GetTopLanguages(ctx *gin.Context)
}

type apiController struct {
	githubService   service.GithubService
	languageCatalog *catalog.Catalog
	config          config.Config
}

func NewAPIController(config config.Config, service service.GithubService, languageCatalog *catalog.Catalog) APIController {
	return apiController{
		githubService:   service,
		languageCatalog: languageCatalog,
		config:          config,
	}
}

// GetTopLanguages runs the whole pipeline for one request: discovery,
// exclusion filter, branch tree aggregation, ranking, then either the SVG
// card or the JSON debug dump
func (s apiController) GetTopLanguages(c *gin.Context) {
	var query model.StatsQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(err))
		return
	}

	if strings.TrimSpace(query.User) == "" {
		c.JSON(http.StatusBadRequest, model.NewAPIError(model.ErrMissingUser))
		return
	}

	if s.config.Github.Token == "" {
		c.JSON(http.StatusInternalServerError, model.NewAPIError(model.ErrMissingToken))
		return
	}

	timeout := time.Duration(s.config.API.RequestTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	branch := query.Branch

	if branch == "" {
		branch = s.config.Defaults.Branch
	}

	refs, err := s.githubService.ListOwnedRepositories(
		ctx,
		strings.TrimSpace(query.User),
		model.ParseBool(query.IncludeForks),
		model.ParseBool(query.IncludeArchived),
	)

	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewAPIError(err))
		return
	}

	refs = excludeByName(refs, model.ParseNameSet(query.ExcludeRepos))

	if repoCap := model.Clamp(query.MaxRepos, s.config.Defaults.MaxRepos, minRepos, maxRepos); len(refs) > repoCap {
		refs = refs[:repoCap]
	}

	if len(refs) == 0 {
		c.JSON(http.StatusNotFound, model.NewAPIError(model.ErrNoRepositories))
		return
	}

	totals, failures, truncated, err := s.githubService.AggregateAcrossRepositories(ctx, refs, branch)

	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewAPIError(err))
		return
	}

	langsCount := model.Clamp(query.LangsCount, s.config.Defaults.LangsCount, stats.MinLangsCount, stats.MaxLangsCount)
	ranked := stats.Rank(totals, model.ParseNameSet(query.Hide), langsCount, s.languageCatalog.Color)

	if model.ParseBool(query.Debug) {
		c.JSON(http.StatusOK, model.DebugReport{
			User:         query.User,
			Branch:       branch,
			RepoCount:    len(refs),
			Repositories: refs,
			Totals:       totals,
			Ranked:       ranked,
			Failures:     failures,
			Truncated:    truncated,
		})
		return
	}

	svg := render.Card(ranked, render.Options{
		Layout:      query.Layout,
		Theme:       query.Theme,
		TitleColor:  query.TitleColor,
		TextColor:   query.TextColor,
		BgColor:     query.BgColor,
		BorderColor: query.BorderColor,
		HideTitle:   model.ParseBool(query.HideTitle),
		HideBorder:  model.ParseBool(query.HideBorder),
		Locale:      query.Locale,
		CustomTitle: query.CustomTitle,
		CardWidth:   query.CardWidth,
	})

	c.Header("Cache-Control", cacheDirective)
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}

// excludeByName drops every repository whose name matches the exclusion set,
// case insensitively, before any tree resolution happens
func excludeByName(refs []model.RepositoryRef, exclude map[string]bool) []model.RepositoryRef {
	if len(exclude) == 0 {
		return refs
	}

	kept := make([]model.RepositoryRef, 0, len(refs))

	for _, ref := range refs {
		if exclude[strings.ToLower(ref.Repository)] {
			continue
		}

		kept = append(kept, ref)
	}

	return kept
}
