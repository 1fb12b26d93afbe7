package rules

import (
	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/section"
)

func newDoc() *block.Document {
	return &block.Document{}
}

func addSection(doc *block.Document, t section.Type) *block.Section {
	sec := &block.Section{Level: 2, Title: string(t), SectionType: t}
	block.AddChild(doc, sec)
	return sec
}

func addRequirement(parent block.Block, id string) *block.Requirement {
	req := &block.Requirement{ReqID: id, ReqType: "REQ"}
	block.AddChild(parent, req)
	return req
}

func addTask(parent block.Block, id string) *block.Task {
	task := &block.Task{TaskID: id}
	block.AddChild(parent, task)
	return task
}

func addListItem(parent block.Block, content string) *block.ListItem {
	item := &block.ListItem{Content: content}
	item.RawContent = content
	block.AddChild(parent, item)
	return item
}
