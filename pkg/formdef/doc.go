// Package formdef loads declarative form definitions from JSON or YAML files
// and builds them into forms. Definition files hold a single top-level
// "forms" map keyed by form id:
//
//	forms:
//	  settings:
//	    type: custom_form
//	    title: Settings
//	    fields:
//	      - type: toggle
//	        id: music
//	        text: Music
//	        default: true
//
// Author-supplied text is stripped of markup before it reaches a form.
package formdef
