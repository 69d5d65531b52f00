// Package service composes skill and server lookups into the operations the
// CLI exposes: combined listings and a single "show" that tries skills
// before servers.
package service

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/jingkaihe/claudelist/pkg/catalog"
	"github.com/jingkaihe/claudelist/pkg/logger"
)

// SkillSource lists and resolves skills.
type SkillSource interface {
	ListSkills() ([]catalog.Skill, error)
	SkillDetail(name string) (*catalog.SkillDetail, error)
}

// ServerSource lists and resolves MCP servers.
type ServerSource interface {
	ListServers() ([]catalog.Server, error)
	ServerDetail(name string) (*catalog.ServerDetail, error)
}

// ListOptions narrows a listing.
type ListOptions struct {
	// Filter is a shell-style glob matched against entry names. Empty
	// matches everything.
	Filter string
}

// Service answers listing and detail queries.
type Service struct {
	skills  SkillSource
	servers ServerSource
}

// New creates a Service over the given sources.
func New(skills SkillSource, servers ServerSource) *Service {
	return &Service{skills: skills, servers: servers}
}

// NewLocal creates a Service backed by a single local catalog.
func NewLocal(local *catalog.Local) *Service {
	return New(local, local)
}

// ListSkills returns the skills matching opts.
func (s *Service) ListSkills(ctx context.Context, opts ListOptions) ([]catalog.Skill, error) {
	skills, err := s.skills.ListSkills()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}
	logger.G(ctx).WithField("count", len(skills)).Debug("listed skills")
	return filterByName(skills, opts.Filter)
}

// ListServers returns the MCP servers matching opts.
func (s *Service) ListServers(ctx context.Context, opts ListOptions) ([]catalog.Server, error) {
	servers, err := s.servers.ListServers()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list MCP servers")
	}
	logger.G(ctx).WithField("count", len(servers)).Debug("listed MCP servers")
	return filterByName(servers, opts.Filter)
}

// ListAll lists skills and servers. Failures from either side are collected
// and returned together.
func (s *Service) ListAll(ctx context.Context, opts ListOptions) (catalog.Listing, error) {
	var result *multierror.Error

	skills, err := s.ListSkills(ctx, opts)
	if err != nil {
		result = multierror.Append(result, err)
	}

	servers, err := s.ListServers(ctx, opts)
	if err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return catalog.Listing{}, err
	}

	return catalog.Listing{Skills: skills, Servers: servers}, nil
}

// Show resolves name to a skill, falling back to an MCP server only when no
// skill name contains it. Ambiguous skill names, unreadable descriptors, and
// I/O failures are returned without trying servers.
func (s *Service) Show(ctx context.Context, name string) (catalog.DetailItem, error) {
	log := logger.G(ctx).WithField("name", name)

	skill, err := s.skills.SkillDetail(name)
	switch {
	case err == nil:
		log.WithField("skill", skill.Name).Debug("resolved skill")
		return catalog.DetailItem{Skill: skill}, nil
	case !catalog.IsNotFound(err):
		return catalog.DetailItem{}, err
	}

	log.Debug("no matching skill, trying MCP servers")

	server, err := s.servers.ServerDetail(name)
	if err != nil {
		return catalog.DetailItem{}, err
	}
	log.WithField("server", server.Name).Debug("resolved MCP server")
	return catalog.DetailItem{Server: server}, nil
}
