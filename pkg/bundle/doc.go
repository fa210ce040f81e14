// Package bundle turns authored layer specs into composer layers.
//
// A config file lists layers in order. An entry is either a layer:
//
//	- name: app
//	  files: ["**/*.{js,jsx,ts,tsx}"]
//	  plugins: [react, simple-import-sort]
//	  rulesFrom: [react/recommended]
//	  rules:
//	    react/display-name: off
//
// or a reference that expands in place to the layers of a preset:
//
//	- preset: typescript/recommended
//
// Presets ship embedded in the binary; RegisterPreset adds more.
package bundle
