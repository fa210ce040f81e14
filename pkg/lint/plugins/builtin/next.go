package builtin

import "github.com/leapstack-labs/layerlint/pkg/lint"

// Next describes @next/eslint-plugin-next.
var Next = &lint.Descriptor{
	PluginName: "@next/next",
	DocsURL:    "https://nextjs.org/docs/messages/%s",
	RuleSet: []lint.RuleInfo{
		rule("fonts", "google-font-display", "Enforce font-display with Google Fonts"),
		rule("fonts", "google-font-preconnect", "Ensure preconnect is used with Google Fonts"),
		rule("fonts", "no-page-custom-font", "Prevent page-only custom fonts"),
		rule("scripts", "inline-script-id", "Require an id on inline next/script components"),
		rule("scripts", "next-script-for-ga", "Prefer next/script for Google Analytics"),
		rule("scripts", "no-before-interactive-script-outside-document", "Restrict beforeInteractive scripts to the document"),
		rule("scripts", "no-script-component-in-head", "Prevent next/script inside next/head"),
		rule("scripts", "no-sync-scripts", "Prevent synchronous scripts"),
		rule("scripts", "no-unwanted-polyfillio", "Prevent duplicate polyfills from Polyfill.io"),
		rule("document", "no-document-import-in-page", "Prevent importing next/document outside pages/_document"),
		rule("document", "no-duplicate-head", "Prevent duplicate <Head> in pages/_document"),
		rule("document", "no-head-element", "Prevent usage of <head> elements"),
		rule("document", "no-head-import-in-document", "Prevent next/head in pages/_document"),
		rule("document", "no-styled-jsx-in-document", "Prevent styled-jsx in pages/_document"),
		rule("document", "no-title-in-document-head", "Prevent <title> in next/document Head"),
		rule("pages", "no-async-client-component", "Prevent async client components"),
		rule("pages", "no-assign-module-variable", "Prevent assignment to the module variable"),
		rule("pages", "no-css-tags", "Prevent manual stylesheet tags"),
		rule("pages", "no-html-link-for-pages", "Prevent <a> elements for internal navigation", "pagesDir"),
		rule("pages", "no-img-element", "Prevent <img> in favour of next/image"),
		rule("pages", "no-typos", "Prevent typos in data fetching functions"),
	},
}
