package hooks

// JestMockPolicyName is the command-line name of the Jest mock policy.
const JestMockPolicyName = "jest-mock"

// JestMockPolicy blocks Jest mocking APIs in test files. Tests are expected
// to use real implementations wired through dependency injection.
func JestMockPolicy() *Policy {
	return &Policy{
		Name:   JestMockPolicyName,
		Domain: "Jest mocking",
		Filter: NewGlobFilter(
			"**/*.{test,spec}.{ts,tsx,js,jsx}",
			"**/__tests__/**",
			"**/tests/**",
		),
		Rules: jestMockRules(),
		Guidance: "NO MOCKS ALLOWED. Use dependency injection to pass real implementations, " +
			"and real test fixtures such as getTestSql() for database access, instead of mocks.",
		EmptyReason: "No test content to check",
		CleanReason: "No Jest mocking patterns detected",
	}
}

func jestMockRules() []Rule {
	return []Rule{
		{
			ID:      "jest-fn",
			Matcher: MatchRegexp(`\bjest\.fn\s*\(`),
			Message: "jest.fn() mock function found",
		},
		{
			ID:      "jest-mock",
			Matcher: MatchRegexp(`\bjest\.mock\s*\(`),
			Message: "jest.mock() module mocking found",
		},
		{
			ID:      "jest-spyon",
			Matcher: MatchRegexp(`\bjest\.spyOn\s*\(`),
			Message: "jest.spyOn() spy found",
		},
		{
			ID:      "jest-mock-type",
			Matcher: MatchRegexp(`\bjest\.Mock\s*<`),
			Message: "jest.Mock<> type annotation found",
		},
		{
			ID:      "jest-mocked-type",
			Matcher: MatchRegexp(`\bjest\.Mocked\s*<`),
			Message: "jest.Mocked<> type found",
		},
		{
			ID:       "mock-config",
			Matcher:  MatchRegexp(`\b(?:mockReturnValue|mockResolvedValue|mockRejectedValue|mockImplementation)`),
			Message:  "Mock configuration methods found",
			Guidance: "construct the collaborator with the behavior the test needs",
		},
		{
			ID:      "mock-cleanup",
			Matcher: MatchRegexp(`\bjest\.(?:clearAllMocks|resetAllMocks|restoreAllMocks)\b`),
			Message: "jest mock cleanup methods found",
		},
		{
			ID:      "mock-from-module",
			Matcher: MatchRegexp(`\bjest\.createMockFromModule\s*\(`),
			Message: "jest.createMockFromModule() found",
		},
		{
			ID:      "require-actual-mock",
			Matcher: MatchRegexp(`\bjest\.(?:requireActual|requireMock)\s*\(`),
			Message: "jest.requireActual() or jest.requireMock() found",
		},
		{
			ID:       "mock-matchers",
			Matcher:  MatchRegexp(`\btoHaveBeenCalled`),
			Message:  "Mock verification matchers found",
			Guidance: "assert on returned values or persisted state instead of calls",
		},
		{
			ID:      "import-jest-mock",
			Matcher: MatchRegexp(`\bfrom\s*['"]jest-mock['"]|\brequire\s*\(\s*['"]jest-mock['"]\s*\)`),
			Message: "Import from jest-mock package detected",
		},
		{
			ID:      "import-jest-globals-mock-util",
			Matcher: MatchNamedImport("@jest/globals", "fn", "spyOn", "mocked"),
			Message: "Import of Jest mock utilities detected",
		},
		{
			ID:      "import-mock-type",
			Matcher: MatchNamedImport("jest", "Mock", "Mocked"),
			Message: "Import of Jest mock types detected",
		},
	}
}
