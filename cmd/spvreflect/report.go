package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/gogpu/spvreflect"
	"github.com/gogpu/spvreflect/types"
)

// report describes the entry points of one module.
type report struct {
	File        string        `yaml:"file"`
	EntryPoints []entryReport `yaml:"entry_points"`
}

type entryReport struct {
	Name           string           `yaml:"name"`
	ExecutionModel string           `yaml:"execution_model"`
	ExecutionModes []string         `yaml:"execution_modes,omitempty"`
	Inputs         []variableReport `yaml:"inputs,omitempty"`
	Outputs        []variableReport `yaml:"outputs,omitempty"`
	Descriptors    []descReport     `yaml:"descriptors,omitempty"`
}

type variableReport struct {
	Location string `yaml:"location"`
	Name     string `yaml:"name,omitempty"`
	Type     string `yaml:"type"`
}

type descReport struct {
	Binding string `yaml:"binding"`
	Name    string `yaml:"name,omitempty"`
	Type    string `yaml:"type"`
	Size    uint32 `yaml:"size,omitempty"`
}

func readBinary(path string) (spvreflect.Binary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spvreflect.Binary{}, err
	}
	return spvreflect.FromBytes(data), nil
}

func newReport(file string, entryPoints []spvreflect.EntryPoint) report {
	r := report{File: file, EntryPoints: make([]entryReport, 0, len(entryPoints))}
	for _, ep := range entryPoints {
		e := newEntryReport(ep.Manifest)
		e.Name = ep.Name
		e.ExecutionModel = ep.ExecutionModel.String()
		for _, mode := range ep.ExecutionModes {
			e.ExecutionModes = append(e.ExecutionModes, mode.String())
		}
		r.EntryPoints = append(r.EntryPoints, e)
	}
	return r
}

func newEntryReport(m *spvreflect.Manifest) entryReport {
	var e entryReport
	for _, in := range m.Inputs() {
		name, _ := m.NameOf(spvreflect.InputLocator(in.Location))
		e.Inputs = append(e.Inputs, variableReport{
			Location: in.Location.String(),
			Name:     name,
			Type:     in.Type.String(),
		})
	}
	for _, out := range m.Outputs() {
		name, _ := m.NameOf(spvreflect.OutputLocator(out.Location))
		e.Outputs = append(e.Outputs, variableReport{
			Location: out.Location.String(),
			Name:     name,
			Type:     out.Type.String(),
		})
	}
	for _, d := range m.Descs() {
		name, _ := m.NameOf(spvreflect.DescriptorLocator(d.Binding))
		desc := descReport{
			Binding: d.Binding.String(),
			Name:    name,
			Type:    d.Desc.String(),
		}
		if block, ok := types.BlockOf(d.Desc); ok {
			desc.Size, _ = block.Size()
		}
		e.Descriptors = append(e.Descriptors, desc)
	}
	return e
}

func writeYAML(w io.Writer, reports []report) error {
	out, err := yaml.Marshal(reports)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func writeText(w io.Writer, reports []report) error {
	var sb strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&sb, "%s:\n", r.File)
		for _, ep := range r.EntryPoints {
			fmt.Fprintf(&sb, "  %s %q\n", ep.ExecutionModel, ep.Name)
			for _, mode := range ep.ExecutionModes {
				fmt.Fprintf(&sb, "    mode %s\n", mode)
			}
			writeVariables(&sb, "in", ep.Inputs)
			writeVariables(&sb, "out", ep.Outputs)
			for _, d := range ep.Descriptors {
				fmt.Fprintf(&sb, "    desc %s%s: %s", d.Binding, label(d.Name), d.Type)
				if d.Size != 0 {
					fmt.Fprintf(&sb, " (%d bytes)", d.Size)
				}
				sb.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeVariables(sb *strings.Builder, kind string, vars []variableReport) {
	for _, v := range vars {
		fmt.Fprintf(sb, "    %s %s%s: %s\n", kind, v.Location, label(v.Name), v.Type)
	}
}

func label(name string) string {
	if name == "" {
		return ""
	}
	return " " + name
}
