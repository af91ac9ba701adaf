package seed

// Word pools shared by the graph builders.
var (
	taskVerbs = []string{
		"Design", "Build", "Refactor", "Fix", "Test",
		"Deploy", "Document", "Analyze", "Integrate", "Migrate",
	}
	taskAreas = []string{
		"API", "Frontend", "Backend", "Database", "CI/CD",
		"Auth", "Billing", "Analytics", "Marketing", "Infra",
	}
	taskDescriptions = []string{
		"Small tweak", "Important change", "Blocking bug",
		"Performance improvement", "Feature enhancement",
	}
	projectEmojis = []string{
		"📊", "🚀", "🔧", "🧪", "📈", "🛠️", "🧩", "⚙️", "💡", "🗂️",
	}
	projectCodenames = []string{
		"Alpha", "Beta", "Gamma", "Delta", "Omega", "Kappa", "Sigma", "Theta",
	}
	demoTaskVerbs = []string{"Design", "Build", "Fix", "Test", "Deploy"}
)

// defaultPassword is the placeholder credential seeded users receive.
// Hashing it is the API's concern, not the seeder's.
const defaultPassword = "Passw0rd!"
