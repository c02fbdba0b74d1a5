package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProjectsPath 内置项目列表路径
const DefaultProjectsPath = "data/projects.yaml"

// Project 作品描述（只读）
// 每个 Project 对应游戏中的一个收集物，顺序与列表一致
type Project struct {
	Title  string `yaml:"title"`
	Desc   string `yaml:"desc"`
	Tech   string `yaml:"tech"` // 以 ", " 分隔的技术栈
	Impact string `yaml:"impact"`
	Year   string `yaml:"year,omitempty"`
	Icon   string `yaml:"icon,omitempty"` // 收集物上显示的字符
}

// TechList 将技术栈字符串拆分为标签列表
func (p Project) TechList() []string {
	if strings.TrimSpace(p.Tech) == "" {
		return nil
	}
	parts := strings.Split(p.Tech, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// projectsFile 项目列表文件结构
type projectsFile struct {
	Projects []Project `yaml:"projects"`
}

// LoadProjects 加载项目列表
//
// 参数:
//   - path: 配置文件路径（如 "data/projects.yaml"）
//
// 返回:
//   - []Project: 按文件顺序排列的项目
//   - error: 读取、解析或验证失败
func LoadProjects(path string) ([]Project, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProjects(data)
}

// ParseProjects 解析 YAML 项目列表
func ParseProjects(data []byte) ([]Project, error) {
	var file projectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}
	if len(file.Projects) == 0 {
		return nil, fmt.Errorf("projects list is empty")
	}
	for i, p := range file.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project %d has an empty title", i)
		}
	}
	return file.Projects, nil
}
