package html

import "testing"

func TestNodeTree(t *testing.T) {
	doc := NewDocument()
	div := NewElement("div", map[string]string{"id": "root"})
	doc.Root.AddChild(div)
	div.AppendText("hello")
	div.AppendText("")

	if div.Parent != doc.Root {
		t.Errorf("child parent not set")
	}
	if len(div.Children) != 1 {
		t.Fatalf("got %d children, want 1 (empty text skipped)", len(div.Children))
	}
	if div.Children[0].Type != TextNode || div.Children[0].Text != "hello" {
		t.Errorf("text child = %+v", div.Children[0])
	}

	if id, ok := div.GetAttribute("id"); !ok || id != "root" {
		t.Errorf("GetAttribute(id) = %q, %v", id, ok)
	}
	if _, ok := div.GetAttribute("missing"); ok {
		t.Errorf("missing attribute reported present")
	}
	if _, ok := (&Node{}).GetAttribute("any"); ok {
		t.Errorf("nil attribute map should report absent")
	}
}
