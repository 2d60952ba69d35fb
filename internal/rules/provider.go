package rules

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"

	"commitgate/internal/domain"
	"commitgate/internal/port"
)

// rulesFile is the on-disk shape of the rules configuration.
type rulesFile struct {
	Projects  []domain.ProjectRules `mapstructure:"projects"`
	Templates []domain.Template     `mapstructure:"templates"`
	Endpoints []domain.Endpoint     `mapstructure:"endpoints"`
}

// Provider serves project rules, commit templates, and endpoint
// definitions from a rules file loaded once at startup. The loaded
// snapshot is immutable; lookups never mutate it.
type Provider struct {
	projects  []domain.ProjectRules
	templates map[string]*domain.Template
	endpoints map[string]*domain.Endpoint
}

// Load reads and parses the rules file at path.
func Load(path string) (*Provider, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var file rulesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	p := &Provider{
		projects:  file.Projects,
		templates: make(map[string]*domain.Template, len(file.Templates)),
		endpoints: make(map[string]*domain.Endpoint, len(file.Endpoints)),
	}
	for i := range file.Templates {
		tpl := &file.Templates[i]
		if _, exists := p.templates[tpl.Name]; exists {
			return nil, fmt.Errorf("rules file %s: duplicate template %q", path, tpl.Name)
		}
		p.templates[tpl.Name] = tpl
	}
	for i := range file.Endpoints {
		ep := &file.Endpoints[i]
		if _, exists := p.endpoints[ep.Name]; exists {
			return nil, fmt.Errorf("rules file %s: duplicate endpoint %q", path, ep.Name)
		}
		p.endpoints[ep.Name] = ep
	}

	log.Printf("rules.Provider: loaded %d project rule(s), %d template(s), %d endpoint(s) from %s",
		len(p.projects), len(p.templates), len(p.endpoints), path)
	return p, nil
}

// ProjectRules returns the first rules block matching the project and
// branch, or domain.ErrNotConfigured when none matches.
func (p *Provider) ProjectRules(_ context.Context, project, branch string) (*domain.ProjectRules, error) {
	for i := range p.projects {
		r := &p.projects[i]
		if r.Project == project && r.MatchesBranch(branch) {
			return r, nil
		}
	}
	return nil, domain.ErrNotConfigured
}

// Template returns the template with the given name.
func (p *Provider) Template(_ context.Context, name string) (*domain.Template, error) {
	tpl, ok := p.templates[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tpl, nil
}

// Endpoint returns the endpoint definition with the given name.
func (p *Provider) Endpoint(_ context.Context, name string) (*domain.Endpoint, error) {
	ep, ok := p.endpoints[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ep, nil
}

// Compile-time checks.
var (
	_ port.RulesProvider    = (*Provider)(nil)
	_ port.TemplateProvider = (*Provider)(nil)
	_ port.EndpointProvider = (*Provider)(nil)
)
