package lingo

import (
	"reflect"
	"testing"
)

func TestKeysFromHTML_Basic(t *testing.T) {
	html := `<html><body><h1>Welcome</h1><p>Hello World</p></body></html>`

	keys := KeysFromHTML(html)
	want := []string{"Welcome", "Hello World"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("KeysFromHTML returned %v, want %v", keys, want)
	}
}

func TestKeysFromHTML_Deduplicates(t *testing.T) {
	html := `<div><p>Save</p><button>Save</button><p>Cancel</p></div>`

	keys := KeysFromHTML(html)
	want := []string{"Save", "Cancel"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("KeysFromHTML returned %v, want %v", keys, want)
	}
}

func TestKeysFromHTML_IgnoredTags(t *testing.T) {
	html := `<div>
		<p>Visible</p>
		<script>var x = "hidden";</script>
		<style>.c { color: red }</style>
		<code>fmt.Println()</code>
	</div>`

	keys := KeysFromHTML(html)
	want := []string{"Visible"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("KeysFromHTML returned %v, want %v", keys, want)
	}
}

func TestKeysFromHTML_NoTranslateAttribute(t *testing.T) {
	html := `<div><p>Translate me</p><p data-no-translate>ACME-X1</p></div>`

	keys := KeysFromHTML(html)
	want := []string{"Translate me"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("KeysFromHTML returned %v, want %v", keys, want)
	}
}

func TestKeysFromHTML_Empty(t *testing.T) {
	if keys := KeysFromHTML(""); len(keys) != 0 {
		t.Errorf("KeysFromHTML(\"\") returned %v, want none", keys)
	}
	if keys := KeysFromHTML("<div>   </div>"); len(keys) != 0 {
		t.Errorf("whitespace-only document returned %v, want none", keys)
	}
}
