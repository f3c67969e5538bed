package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// maxKeywordLength matches the category_rules.keyword column.
const maxKeywordLength = 255

type seedRule struct {
	keyword  string
	category string
}

var defaultSeedRules = []seedRule{
	{"netflix", models.CategoryEntertainment},
	{"spotify", models.CategoryEntertainment},
	{"youtube", models.CategoryEntertainment},
	{"uber", models.CategoryTransport},
	{"bolt", models.CategoryTransport},
	{"yandex", models.CategoryTransport},
	{"glovo", models.CategoryFood},
	{"wolt", models.CategoryFood},
	{"mcdonalds", models.CategoryFood},
	{"kfc", models.CategoryFood},
	{"burger king", models.CategoryFood},
	{"starbucks", models.CategoryFood},
	{"amazon", models.CategoryShopping},
	{"kaspi", models.CategoryShopping},
	{"salary", models.CategorySalary},
	{"payroll", models.CategorySalary},
	{"rent", models.CategoryUtilities},
	{"electricity", models.CategoryUtilities},
	{"water", models.CategoryUtilities},
	{"pharmacy", models.CategoryHealth},
	{"hospital", models.CategoryHealth},
	{"clinic", models.CategoryHealth},
}

// Categorizer labels free text in two tiers: stored keyword rules, then an
// optional remote classifier whose confident answers are written back as rules.
type Categorizer struct {
	ruleRepo    repositories.CategoryRuleRepositoryInterface
	classifier  AIClassifierInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	config      config.AIConfig
	logger      *slog.Logger
}

// NewCategorizer creates a categorizer. classifier may be nil, in which case
// only the rule tier runs.
func NewCategorizer(
	ruleRepo repositories.CategoryRuleRepositoryInterface,
	classifier AIClassifierInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.AIConfig,
	logger *slog.Logger,
) CategorizerInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Categorizer{
		ruleRepo:    ruleRepo,
		classifier:  classifier,
		auditLogger: auditLogger,
		metrics:     metrics,
		config:      cfg,
		logger:      logger,
	}
}

func (c *Categorizer) Categorize(ctx context.Context, text string) string {
	return c.CategorizeDetailed(ctx, text).Category
}

func (c *Categorizer) CategorizeDetailed(ctx context.Context, text string) *models.CategorizationResult {
	normalized := models.NormalizeKeyword(text)
	if normalized == "" {
		return c.record(models.Uncategorized())
	}

	rules, err := c.ruleRepo.All()
	if err != nil {
		c.logger.WarnContext(ctx, "failed to load category rules", "error", err)
	} else if rule := matchRule(normalized, rules); rule != nil {
		return c.record(&models.CategorizationResult{
			Category:       rule.Category,
			Method:         models.CategorizationMethodRule,
			Confidence:     1,
			MatchedKeyword: rule.Keyword,
		})
	}

	if c.classifier == nil {
		return c.record(models.Uncategorized())
	}

	classification, ok := c.classify(ctx, text)
	if !ok {
		return c.record(models.Uncategorized())
	}

	c.learn(ctx, normalized, classification)

	return c.record(&models.CategorizationResult{
		Category:   classification.Category,
		Method:     models.CategorizationMethodAI,
		Confidence: classification.Confidence,
	})
}

// matchRule returns the rule whose keyword occurs in text. The longest keyword
// wins; equal lengths keep the earlier rule.
func matchRule(text string, rules []models.CategoryRule) *models.CategoryRule {
	var best *models.CategoryRule
	for i := range rules {
		keyword := rules[i].Keyword
		if keyword == "" || !strings.Contains(text, keyword) {
			continue
		}
		if best == nil || len(keyword) > len(best.Keyword) {
			best = &rules[i]
		}
	}
	return best
}

func (c *Categorizer) classify(ctx context.Context, text string) (*models.AIClassification, bool) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	classification, err := c.classifier.Classify(ctx, text)
	c.metrics.RecordProcessingTime(MetricAIDuration, time.Since(start))
	if err == nil && classification == nil {
		err = errors.New("empty classification")
	}

	if err != nil {
		c.metrics.IncrementCounter(MetricAIRequest, map[string]string{"backend": c.classifier.Name(), "status": "failed"})
		c.logger.WarnContext(ctx, "ai categorization failed",
			"backend", c.classifier.Name(),
			"error", err,
		)
		return nil, false
	}

	c.metrics.IncrementCounter(MetricAIRequest, map[string]string{"backend": c.classifier.Name(), "status": "success"})
	c.logger.InfoContext(ctx, "ai categorized text",
		"backend", c.classifier.Name(),
		"category", classification.Category,
		"confidence", classification.Confidence,
	)
	return classification, true
}

// learn stores a confident AI answer as a rule keyed by the whole input.
// Failures are logged only.
func (c *Categorizer) learn(ctx context.Context, keyword string, classification *models.AIClassification) {
	if classification.Confidence <= c.config.LearningThreshold || !models.IsLearnableCategory(classification.Category) {
		return
	}
	if len(keyword) > maxKeywordLength {
		c.logger.DebugContext(ctx, "keyword too long to learn", "length", len(keyword))
		return
	}

	exists, err := c.ruleRepo.ExistsByKeyword(keyword)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to check learned rule", "keyword", keyword, "error", err)
		return
	}
	if exists {
		return
	}

	rule := &models.CategoryRule{
		Keyword:  keyword,
		Category: classification.Category,
		Source:   models.RuleSourceLearned,
	}
	if err := c.ruleRepo.Create(rule); err != nil {
		c.logger.WarnContext(ctx, "failed to save learned rule", "keyword", keyword, "error", err)
		return
	}

	c.metrics.IncrementCounter(MetricRuleLearned, nil)
	c.auditLogger.LogRuleLearned(ctx, keyword, classification.Category, classification.Confidence)
}

func (c *Categorizer) record(result *models.CategorizationResult) *models.CategorizationResult {
	c.metrics.IncrementCounter(MetricCategorization, map[string]string{"method": result.Method})
	return result
}

// SeedDefaults inserts the built-in dictionary plus the optional YAML seed file,
// skipping keywords that already exist. It returns the number of rules added.
func (c *Categorizer) SeedDefaults() (int, error) {
	seeds := append([]seedRule(nil), defaultSeedRules...)

	if c.config.SeedFile != "" {
		extra, err := loadSeedFile(c.config.SeedFile)
		if err != nil {
			return 0, err
		}
		seeds = append(seeds, extra...)
	}

	added := 0
	for _, seed := range seeds {
		exists, err := c.ruleRepo.ExistsByKeyword(seed.keyword)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		rule := &models.CategoryRule{
			Keyword:  seed.keyword,
			Category: seed.category,
			Source:   models.RuleSourceSeed,
		}
		if err := c.ruleRepo.Create(rule); err != nil {
			if apperrors.CodeFor(err) == apperrors.RuleKeywordExists {
				continue
			}
			return added, fmt.Errorf("seed %q: %w", seed.keyword, err)
		}
		added++
	}

	c.logger.Info("seeded category rules", "added", added, "candidates", len(seeds))
	return added, nil
}

// loadSeedFile reads a YAML mapping of keyword to category.
func loadSeedFile(path string) ([]seedRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seeds := make([]seedRule, 0, len(raw))
	for keyword, category := range raw {
		canonical := models.CanonicalCategory(category)
		if canonical == "" || canonical == models.CategoryUncategorized {
			return nil, fmt.Errorf("seed file %s: unknown category %q for keyword %q", path, category, keyword)
		}
		normalized := models.NormalizeKeyword(keyword)
		if normalized == "" {
			continue
		}
		seeds = append(seeds, seedRule{keyword: normalized, category: canonical})
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].keyword < seeds[j].keyword })

	return seeds, nil
}

func (c *Categorizer) ListRules() ([]models.CategoryRule, error) {
	return c.ruleRepo.All()
}

// AddRule stores an operator-defined rule.
func (c *Categorizer) AddRule(keyword, category string) (*models.CategoryRule, error) {
	canonical := models.CanonicalCategory(category)
	if canonical == "" || canonical == models.CategoryUncategorized {
		return nil, apperrors.Validationf(apperrors.RuleInvalidCategory, "unknown category %q", category)
	}

	normalized := models.NormalizeKeyword(keyword)
	if len(normalized) > maxKeywordLength {
		return nil, apperrors.Validationf(apperrors.ValidationOutOfRange, "keyword must be at most %d characters", maxKeywordLength)
	}

	rule := &models.CategoryRule{
		Keyword:  normalized,
		Category: canonical,
		Source:   models.RuleSourceManual,
	}
	if err := c.ruleRepo.Create(rule); err != nil {
		return nil, err
	}

	c.logger.Info("category rule added", "keyword", rule.Keyword, "category", rule.Category)
	return rule, nil
}

func (c *Categorizer) DeleteRule(ruleID uuid.UUID) error {
	return c.ruleRepo.Delete(ruleID)
}
