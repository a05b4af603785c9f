package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"alfredoptarigan/resume-matcher/internal/models"
)

const (
	skillWeight      = 60.0
	keywordWeight    = 30.0
	experienceWeight = 10.0

	maxJobKeywords       = 25
	maxKeywordHints      = 5
	maxExtraSkills       = 5
	strongKeywordOverlap = 0.6
	weakKeywordOverlap   = 0.4
)

// matchStopWords filters common words that add noise to keyword matching.
var matchStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
	"looking": true, "seeking": true, "experience": true, "experienced": true,
	"years": true, "year": true, "required": true, "requirements": true,
	"preferred": true, "strong": true, "including": true, "etc": true,
	"must": true, "plus": true, "ability": true, "skills": true, "knowledge": true,
	"candidate": true, "ideal": true, "responsibilities": true, "other": true,
	"any": true, "may": true, "should": true, "would": true, "within": true,
	"across": true, "over": true, "through": true, "both": true, "help": true,
}

var (
	yearsPattern  = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)
	metricPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent\b|x\b)|[$€£]\s?\d|\b\d{1,3}(?:,\d{3})+\b|\b\d+[km]\b`)
)

// KeywordAnalyzer scores a resume with a skill catalog and keyword overlap.
// It is deterministic and needs no network access.
type KeywordAnalyzer struct {
	catalog []skill
	byName  map[string]skill
	aliases map[string][]string
}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	a := &KeywordAnalyzer{
		catalog: skillCatalog,
		byName:  make(map[string]skill, len(skillCatalog)),
		aliases: make(map[string][]string, len(skillCatalog)),
	}
	for _, s := range skillCatalog {
		a.byName[s.Name] = s
		for _, alias := range s.Aliases {
			a.aliases[s.Name] = append(a.aliases[s.Name], strings.Join(tokenize(alias), " "))
		}
	}
	return a
}

// documentProfile is what the analyzer extracts from one text.
type documentProfile struct {
	tokens   []string
	skills   []string // catalog names, ordered by first appearance
	keywords []string // ordered by frequency then first appearance
	years    int
}

// Analyze implements Analyzer.
func (a *KeywordAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resume := a.profile(req.ResumeText)
	job := a.profile(req.JobDescriptionText)

	resumeSkills := a.satisfiedSkills(resume.skills)

	var matchedSkills, missingSkills []string
	for _, name := range job.skills {
		if resumeSkills[name] {
			matchedSkills = append(matchedSkills, name)
		} else {
			missingSkills = append(missingSkills, name)
		}
	}

	jobKeywords := job.keywords
	if len(jobKeywords) > maxJobKeywords {
		jobKeywords = jobKeywords[:maxJobKeywords]
	}
	resumeTokens := make(map[string]bool, len(resume.tokens))
	for _, t := range resume.tokens {
		resumeTokens[t] = true
	}
	var missingKeywords []string
	matchedKeywords := 0
	for _, kw := range jobKeywords {
		if resumeTokens[kw] {
			matchedKeywords++
		} else {
			missingKeywords = append(missingKeywords, kw)
		}
	}

	skillCoverage := ratio(len(matchedSkills), len(job.skills))
	keywordCoverage := ratio(matchedKeywords, len(jobKeywords))
	experience := experienceRatio(resume.years, job.years)

	sw, kw := skillWeight, keywordWeight
	if len(job.skills) == 0 {
		sw, kw = 0, skillWeight+keywordWeight
	}
	score := clampScore(int(math.Round(sw*skillCoverage + kw*keywordCoverage + experienceWeight*experience)))

	e := evidence{
		score:           score,
		matchedSkills:   matchedSkills,
		missingSkills:   missingSkills,
		extraSkills:     a.extraSkills(resume.skills, job.skills),
		jobSkillCount:   len(job.skills),
		keywordCoverage: keywordCoverage,
		missingKeywords: missingKeywords,
		resumeYears:     resume.years,
		requiredYears:   job.years,
		quantified:      metricPattern.MatchString(strings.ToLower(req.ResumeText)),
	}

	result := &models.AnalysisResult{
		MatchScore:      score,
		Strengths:       a.strengths(e),
		Weaknesses:      a.weaknesses(e),
		MissingSkills:   append([]string{}, missingSkills...),
		Recommendations: a.recommendations(e),
		Summary:         summarize(e),
	}
	result.Normalize()
	return result, nil
}

type evidence struct {
	score           int
	matchedSkills   []string
	missingSkills   []string
	extraSkills     []string
	jobSkillCount   int
	keywordCoverage float64
	missingKeywords []string
	resumeYears     int
	requiredYears   int
	quantified      bool
}

func (a *KeywordAnalyzer) profile(text string) documentProfile {
	tokens := tokenize(text)
	padded := " " + strings.Join(tokens, " ") + " "

	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for _, s := range a.catalog {
		pos := -1
		for _, alias := range a.aliases[s.Name] {
			if alias == "" {
				continue
			}
			if i := strings.Index(padded, " "+alias+" "); i >= 0 && (pos < 0 || i < pos) {
				pos = i
			}
		}
		if pos >= 0 {
			hits = append(hits, hit{name: s.Name, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	p := documentProfile{tokens: tokens, keywords: rankKeywords(tokens), years: maxYears(text)}
	for _, h := range hits {
		p.skills = append(p.skills, h.name)
	}
	return p
}

// satisfiedSkills expands detected skills with everything they imply.
func (a *KeywordAnalyzer) satisfiedSkills(detected []string) map[string]bool {
	set := make(map[string]bool, len(detected))
	for _, name := range detected {
		set[name] = true
		for _, implied := range a.byName[name].Implies {
			set[implied] = true
		}
	}
	return set
}

func (a *KeywordAnalyzer) extraSkills(resumeSkills, jobSkills []string) []string {
	inJob := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		inJob[s] = true
	}
	var extra []string
	for _, s := range resumeSkills {
		if !inJob[s] {
			extra = append(extra, s)
		}
		if len(extra) == maxExtraSkills {
			break
		}
	}
	return extra
}

// groupByCategory buckets skill names by category in categoryOrder.
func (a *KeywordAnalyzer) groupByCategory(names []string) ([]skillCategory, map[skillCategory][]string) {
	groups := make(map[skillCategory][]string)
	for _, n := range names {
		c := a.byName[n].Category
		groups[c] = append(groups[c], n)
	}
	var order []skillCategory
	for _, c := range categoryOrder {
		if len(groups[c]) > 0 {
			order = append(order, c)
		}
	}
	return order, groups
}

func (a *KeywordAnalyzer) strengths(e evidence) []string {
	var out []string

	order, groups := a.groupByCategory(e.matchedSkills)
	for _, c := range order {
		out = append(out, fmt.Sprintf("Relevant %s experience: %s", categoryLabels[c], strings.Join(groups[c], ", ")))
	}
	if e.requiredYears > 0 && e.resumeYears >= e.requiredYears {
		out = append(out, fmt.Sprintf("Meets the %d+ years of experience the role asks for", e.requiredYears))
	}
	if e.keywordCoverage >= strongKeywordOverlap {
		out = append(out, "Resume language closely mirrors the job description")
	}
	if len(e.extraSkills) > 0 {
		out = append(out, fmt.Sprintf("Additional skills that broaden your profile: %s", strings.Join(e.extraSkills, ", ")))
	}
	if e.quantified {
		out = append(out, "Achievements are backed by concrete numbers")
	}
	return out
}

func (a *KeywordAnalyzer) weaknesses(e evidence) []string {
	var out []string

	order, groups := a.groupByCategory(e.missingSkills)
	for _, c := range order {
		out = append(out, fmt.Sprintf("No evidence of the %s experience the role asks for (%s)", categoryLabels[c], strings.Join(groups[c], ", ")))
	}
	switch {
	case e.requiredYears > 0 && e.resumeYears == 0:
		out = append(out, fmt.Sprintf("Years of experience are not stated; the role asks for %d+", e.requiredYears))
	case e.requiredYears > 0 && e.resumeYears < e.requiredYears:
		out = append(out, fmt.Sprintf("Resume shows about %d years of experience; the role asks for %d+", e.resumeYears, e.requiredYears))
	}
	if e.keywordCoverage < weakKeywordOverlap {
		out = append(out, "Limited overlap with the wording of the job description")
	}
	if !e.quantified {
		out = append(out, "Achievements are not quantified with numbers or metrics")
	}
	return out
}

func (a *KeywordAnalyzer) recommendations(e evidence) []string {
	var out []string

	order, groups := a.groupByCategory(e.missingSkills)
	for _, c := range order {
		out = append(out, fmt.Sprintf("Add specific %s experience, projects or certifications covering %s", categoryLabels[c], strings.Join(groups[c], ", ")))
	}
	if len(e.missingKeywords) > 0 {
		hints := e.missingKeywords
		if len(hints) > maxKeywordHints {
			hints = hints[:maxKeywordHints]
		}
		out = append(out, fmt.Sprintf("Include relevant keywords from the job description such as %s", strings.Join(hints, ", ")))
	}
	switch {
	case e.requiredYears > 0 && e.resumeYears == 0:
		out = append(out, "State your total years of relevant experience explicitly")
	case e.requiredYears > 0 && e.resumeYears < e.requiredYears:
		out = append(out, "Highlight the scope and ownership of past work to offset the experience gap")
	}
	if !e.quantified {
		out = append(out, "Quantify achievements with numbers and metrics")
	}
	if len(out) == 0 {
		out = append(out, "Tailor your summary to this role and keep the strongest matching experience near the top")
	}
	return out
}

func summarize(e evidence) string {
	coverage := fmt.Sprintf("%d%% of the job description's key terms", int(math.Round(e.keywordCoverage*100)))
	if e.jobSkillCount > 0 {
		coverage = fmt.Sprintf("%d of the %d skills the role names", len(e.matchedSkills), e.jobSkillCount)
	}

	focus := ""
	if len(e.missingSkills) > 0 {
		top := e.missingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		focus = fmt.Sprintf(" Focus on %s to strengthen your application.", strings.Join(top, ", "))
	} else if !e.quantified {
		focus = " Quantifying your achievements would strengthen your application further."
	}

	switch {
	case e.score >= 80:
		return fmt.Sprintf("Your resume is a strong match for this role, covering %s.%s", coverage, focus)
	case e.score >= 60:
		return fmt.Sprintf("Your resume aligns with much of this role, covering %s.%s", coverage, focus)
	default:
		return fmt.Sprintf("Your resume currently misses many of this role's requirements, covering %s.%s", coverage, focus)
	}
}

// tokenize lowercases text and splits it into words. Keeps tech suffixes
// like "c++", "c#" and "node.js" by treating + # . as word characters.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// rankKeywords returns distinct content words ordered by frequency, ties
// broken by first appearance.
func rankKeywords(tokens []string) []string {
	counts := make(map[string]int)
	first := make(map[string]int)
	for i, t := range tokens {
		if len([]rune(t)) < 3 || matchStopWords[t] || isNumeric(t) {
			continue
		}
		if _, ok := first[t]; !ok {
			first[t] = i
		}
		counts[t]++
	}

	keywords := make([]string, 0, len(counts))
	for t := range counts {
		keywords = append(keywords, t)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return first[keywords[i]] < first[keywords[j]]
	})
	return keywords
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

// maxYears finds the largest "N years" / "N+ yrs" mention in text.
func maxYears(text string) int {
	best := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	return best
}

func experienceRatio(have, want int) float64 {
	if want <= 0 {
		return 1
	}
	if have <= 0 {
		return 0
	}
	return math.Min(1, float64(have)/float64(want))
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func clampScore(v int) int {
	if v < models.MinMatchScore {
		return models.MinMatchScore
	}
	if v > models.MaxMatchScore {
		return models.MaxMatchScore
	}
	return v
}
