package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/folio/pkg/config"
)

// 用法: go run tools/validate_yaml.go [tuning.yaml] [projects.yaml]
func main() {
	tuningPath := "data/tuning.yaml"
	projectsPath := "data/projects.yaml"
	if len(os.Args) > 1 {
		tuningPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		projectsPath = os.Args[2]
	}

	failed := false

	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", tuningPath, err)
		failed = true
	} else {
		w := tuning.World
		fmt.Printf("✅ %s: 画布 %.0fx%.0f, 重力 %.0f, 起跳 %.0f, 滚动 %.0f\n",
			tuningPath, w.Width, w.Height, w.Gravity, w.JumpImpulse, w.ScrollSpeed)
	}

	projects, err := config.LoadProjects(projectsPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", projectsPath, err)
		failed = true
	} else {
		fmt.Printf("✅ %s: %d 个项目\n", projectsPath, len(projects))
		if n := unknownProjectFields(projectsPath); n > 0 {
			fmt.Printf("⚠️  %s: %d 个未识别的字段\n", projectsPath, n)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// unknownProjectFields 统计项目条目中未被识别的字段（通常是拼写错误）
func unknownProjectFields(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var raw struct {
		Projects []map[string]interface{} `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return 0
	}

	known := map[string]bool{"title": true, "desc": true, "tech": true, "impact": true, "year": true, "icon": true}
	unknown := 0
	for i, p := range raw.Projects {
		for key := range p {
			if !known[key] {
				fmt.Printf("   第 %d 个项目: 未知字段 %q\n", i+1, key)
				unknown++
			}
		}
	}
	return unknown
}
