package services

// skillCategory groups catalog skills for strengths, weaknesses and advice.
type skillCategory string

const (
	categoryLanguage  skillCategory = "language"
	categoryFramework skillCategory = "framework"
	categoryCloud     skillCategory = "cloud"
	categoryDevOps    skillCategory = "devops"
	categoryData      skillCategory = "data"
	categoryML        skillCategory = "ml"
	categoryPractice  skillCategory = "practice"
	categorySoft      skillCategory = "soft"
)

// categoryOrder fixes the order categories are reported in.
var categoryOrder = []skillCategory{
	categoryLanguage,
	categoryFramework,
	categoryCloud,
	categoryDevOps,
	categoryData,
	categoryML,
	categoryPractice,
	categorySoft,
}

var categoryLabels = map[skillCategory]string{
	categoryLanguage:  "programming language",
	categoryFramework: "framework",
	categoryCloud:     "cloud platform",
	categoryDevOps:    "DevOps and tooling",
	categoryData:      "data and database",
	categoryML:        "machine learning",
	categoryPractice:  "engineering practice",
	categorySoft:      "collaboration and leadership",
}

type skill struct {
	Name     string
	Category skillCategory
	// Aliases are matched as whole token sequences after tokenization.
	Aliases []string
	// Implies names skills that having this one also satisfies.
	Implies []string
}

var skillCatalog = []skill{
	{Name: "Python", Category: categoryLanguage, Aliases: []string{"python"}},
	{Name: "Go", Category: categoryLanguage, Aliases: []string{"golang", "go lang", "go language", "go programming"}},
	{Name: "Java", Category: categoryLanguage, Aliases: []string{"java"}},
	{Name: "JavaScript", Category: categoryLanguage, Aliases: []string{"javascript", "ecmascript"}},
	{Name: "TypeScript", Category: categoryLanguage, Aliases: []string{"typescript"}},
	{Name: "C++", Category: categoryLanguage, Aliases: []string{"c++", "cpp"}},
	{Name: "C#", Category: categoryLanguage, Aliases: []string{"c#", "csharp"}},
	{Name: "Rust", Category: categoryLanguage, Aliases: []string{"rust"}},
	{Name: "Ruby", Category: categoryLanguage, Aliases: []string{"ruby"}},
	{Name: "PHP", Category: categoryLanguage, Aliases: []string{"php"}},
	{Name: "Kotlin", Category: categoryLanguage, Aliases: []string{"kotlin"}},
	{Name: "Swift", Category: categoryLanguage, Aliases: []string{"swift"}},
	{Name: "Scala", Category: categoryLanguage, Aliases: []string{"scala"}},

	{Name: "React", Category: categoryFramework, Aliases: []string{"react", "react.js", "reactjs"}},
	{Name: "Angular", Category: categoryFramework, Aliases: []string{"angular", "angularjs"}},
	{Name: "Vue", Category: categoryFramework, Aliases: []string{"vue", "vue.js", "vuejs"}},
	{Name: "Node.js", Category: categoryFramework, Aliases: []string{"node.js", "nodejs"}},
	{Name: "Django", Category: categoryFramework, Aliases: []string{"django"}},
	{Name: "Flask", Category: categoryFramework, Aliases: []string{"flask"}},
	{Name: "FastAPI", Category: categoryFramework, Aliases: []string{"fastapi"}},
	{Name: "Spring", Category: categoryFramework, Aliases: []string{"spring", "spring boot"}},
	{Name: ".NET", Category: categoryFramework, Aliases: []string{".net", "dotnet"}},
	{Name: "Rails", Category: categoryFramework, Aliases: []string{"rails", "ruby on rails"}},
	{Name: "GraphQL", Category: categoryFramework, Aliases: []string{"graphql"}},
	{Name: "REST APIs", Category: categoryFramework, Aliases: []string{"rest api", "rest apis", "restful"}},

	{Name: "AWS", Category: categoryCloud, Aliases: []string{"aws", "amazon web services"}, Implies: []string{"Cloud Computing"}},
	{Name: "Azure", Category: categoryCloud, Aliases: []string{"azure"}, Implies: []string{"Cloud Computing"}},
	{Name: "GCP", Category: categoryCloud, Aliases: []string{"gcp", "google cloud"}, Implies: []string{"Cloud Computing"}},
	{Name: "Cloud Computing", Category: categoryCloud, Aliases: []string{"cloud"}},

	{Name: "Docker", Category: categoryDevOps, Aliases: []string{"docker", "containerization", "containers"}},
	{Name: "Kubernetes", Category: categoryDevOps, Aliases: []string{"kubernetes", "k8s"}},
	{Name: "Terraform", Category: categoryDevOps, Aliases: []string{"terraform"}},
	{Name: "CI/CD", Category: categoryDevOps, Aliases: []string{"ci cd", "cicd", "continuous integration", "continuous delivery"}},
	{Name: "Git", Category: categoryDevOps, Aliases: []string{"git", "github", "gitlab"}},
	{Name: "Linux", Category: categoryDevOps, Aliases: []string{"linux", "unix"}},
	{Name: "Jenkins", Category: categoryDevOps, Aliases: []string{"jenkins"}},
	{Name: "Ansible", Category: categoryDevOps, Aliases: []string{"ansible"}},

	{Name: "SQL", Category: categoryData, Aliases: []string{"sql"}},
	{Name: "PostgreSQL", Category: categoryData, Aliases: []string{"postgresql", "postgres"}, Implies: []string{"SQL"}},
	{Name: "MySQL", Category: categoryData, Aliases: []string{"mysql"}, Implies: []string{"SQL"}},
	{Name: "MongoDB", Category: categoryData, Aliases: []string{"mongodb", "mongo"}},
	{Name: "Redis", Category: categoryData, Aliases: []string{"redis"}},
	{Name: "Kafka", Category: categoryData, Aliases: []string{"kafka"}},
	{Name: "Spark", Category: categoryData, Aliases: []string{"spark", "pyspark"}},
	{Name: "Elasticsearch", Category: categoryData, Aliases: []string{"elasticsearch", "opensearch"}},

	{Name: "Machine Learning", Category: categoryML, Aliases: []string{"machine learning"}},
	{Name: "TensorFlow", Category: categoryML, Aliases: []string{"tensorflow"}, Implies: []string{"Machine Learning"}},
	{Name: "PyTorch", Category: categoryML, Aliases: []string{"pytorch"}, Implies: []string{"Machine Learning"}},
	{Name: "NLP", Category: categoryML, Aliases: []string{"nlp", "natural language processing"}},
	{Name: "LLMs", Category: categoryML, Aliases: []string{"llm", "llms", "large language models"}},

	{Name: "Agile", Category: categoryPractice, Aliases: []string{"agile"}},
	{Name: "Scrum", Category: categoryPractice, Aliases: []string{"scrum"}, Implies: []string{"Agile"}},
	{Name: "Microservices", Category: categoryPractice, Aliases: []string{"microservices", "microservice"}},
	{Name: "Automated Testing", Category: categoryPractice, Aliases: []string{"unit testing", "unit tests", "tdd", "test driven", "automated testing"}},
	{Name: "System Design", Category: categoryPractice, Aliases: []string{"system design", "distributed systems"}},

	{Name: "Leadership", Category: categorySoft, Aliases: []string{"leadership", "mentoring", "mentored", "team lead"}},
	{Name: "Communication", Category: categorySoft, Aliases: []string{"communication"}},
	{Name: "Collaboration", Category: categorySoft, Aliases: []string{"collaboration", "teamwork", "cross functional"}},
}
