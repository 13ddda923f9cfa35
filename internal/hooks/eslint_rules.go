package hooks

// ESLintBypassPolicyName is the command-line name of the ESLint/TypeScript policy.
const ESLintBypassPolicyName = "eslint-bypass"

// ESLintBypassPolicy blocks comments and casts that silence ESLint or the
// TypeScript compiler in JavaScript and TypeScript sources.
func ESLintBypassPolicy() *Policy {
	return &Policy{
		Name:        ESLintBypassPolicyName,
		Domain:      "Rule bypass",
		Filter:      NewExtensionFilter(".ts", ".tsx", ".js", ".jsx", ".mjs"),
		Rules:       eslintBypassRules(),
		Guidance:    "Fix the underlying type or linting issue instead of bypassing the rules.",
		EmptyReason: "No content to check",
		CleanReason: "No ESLint/TypeScript rule bypasses detected",
	}
}

func eslintBypassRules() []Rule {
	return []Rule{
		{
			ID:       "eslint-line",
			Matcher:  MatchRegexp(`//[ \t]*eslint-disable-(?:next-)?line\b`),
			Message:  "ESLint disable comment found",
			Guidance: "address the reported lint error on that line",
		},
		{
			ID:       "eslint-block",
			Matcher:  MatchRegexp(`/\*[ \t]*eslint-disable\b`),
			Message:  "ESLint block disable comment found",
			Guidance: "remove the block directive and fix each reported lint error",
		},
		{
			ID:       "ts-ignore",
			Matcher:  MatchRegexp(`(?://|/\*+)[ \t]*@ts-ignore\b`),
			Message:  "TypeScript @ts-ignore comment found",
			Guidance: "correct the types so the compiler accepts the code",
		},
		{
			ID:       "ts-expect-error",
			Matcher:  MatchRegexp(`(?://|/\*+)[ \t]*@ts-expect-error\b`),
			Message:  "TypeScript @ts-expect-error comment found",
			Guidance: "correct the types so no error is expected",
		},
		{
			ID:       "ts-nocheck",
			Matcher:  MatchRegexp(`(?://|/\*+)[ \t]*@ts-nocheck\b`),
			Message:  "TypeScript @ts-nocheck comment found",
			Guidance: "keep type checking enabled for the whole file",
		},
		{
			ID:       "as-any",
			Matcher:  MatchRegexp(`\bas\s+any\b`),
			Message:  "TypeScript 'as any' type casting found",
			Guidance: "use a precise type, or unknown with a type guard",
		},
	}
}
