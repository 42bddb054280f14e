// 终端版闯关客户端
//
// 面向本地联调：按姓名和年级登录，选择本年级的关卡逐题作答，
// 最后一题答完自动把成绩上报到服务端。
//
// 用法: go run scripts/play_cli.go -name 伊万 -grade 5
package main

import (
	"bufio"
	"finlit_game_backend/internal/client"
	"finlit_game_backend/internal/config"
	"finlit_game_backend/internal/quiz"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func main() {
	name := flag.String("name", "", "学生姓名")
	grade := flag.Int("grade", 0, "年级 (1-11)")
	server := flag.String("server", "", "服务端地址，默认读 configs/config.yaml 的端口")
	statePath := flag.String("state", filepath.Join(os.TempDir(), "finlit_game_session.json"), "本地会话文件路径")
	flag.Parse()

	baseURL := *server
	if baseURL == "" {
		baseURL = "http://localhost:" + serverPortFromConfig()
	}

	state := client.NewAuthState(*statePath)
	if err := state.Restore(); err != nil {
		log.Fatalf("读取本地会话失败: %v", err)
	}

	api := client.NewAPI(baseURL, state)

	if !state.IsAuthenticated() {
		if *name == "" || *grade == 0 {
			log.Fatal("未登录，请用 -name 和 -grade 指定学生")
		}
		user, err := api.StudentLogin(*name, *grade)
		if err != nil {
			log.Fatalf("登录失败: %v", err)
		}
		fmt.Printf("欢迎, %s (%d年级), 金币: %d\n", user.Name, user.Grade, user.Coins)
	} else if state.User != nil {
		fmt.Printf("已登录: %s\n", state.User.Name)
	}

	targetGrade := *grade
	if targetGrade == 0 && state.User != nil {
		targetGrade = state.User.Grade
	}
	if targetGrade == 0 {
		log.Fatal("请用 -grade 指定年级")
	}

	levels, err := api.LevelsByGrade(targetGrade)
	if err != nil {
		log.Fatalf("获取关卡失败: %v", err)
	}
	if len(levels) == 0 {
		log.Fatalf("%d 年级暂无关卡", targetGrade)
	}

	fmt.Println("\n可选关卡:")
	for i, lv := range levels {
		fmt.Printf("  [%d] %s (%d 题)\n", i+1, lv.Title, len(lv.Questions))
	}

	reader := bufio.NewReader(os.Stdin)
	idx := readInt(reader, fmt.Sprintf("选择关卡 (1-%d): ", len(levels)), 1, len(levels))
	level := levels[idx-1]

	session := quiz.NewSession(api)
	if err := session.Start(&level); err != nil {
		log.Fatalf("开始关卡失败: %v", err)
	}

	for {
		q := session.Question()
		fmt.Printf("\n%s\n", q.Text)
		for i, choice := range q.Choices {
			fmt.Printf("  [%d] %s\n", i+1, choice)
		}

		picked := readInt(reader, fmt.Sprintf("你的答案 (1-%d): ", len(q.Choices)), 1, len(q.Choices))
		reveal, err := session.Answer(picked - 1)
		if err != nil {
			log.Fatalf("提交答案失败: %v", err)
		}
		if reveal.Correct {
			fmt.Println("回答正确!")
		} else {
			fmt.Printf("回答错误, 正确答案是 [%d]\n", reveal.CorrectIndex+1)
		}
		if reveal.Explanation != "" {
			fmt.Println("解析:", reveal.Explanation)
		}

		done, err := session.Next()
		if err != nil {
			// 上报失败不影响本局结果展示
			log.Printf("成绩上报失败: %v", err)
		}
		if done {
			break
		}
	}

	outcome := session.Outcome()
	fmt.Printf("\n通关! 答对 %d/%d, 获得金币 %d, 积分 %d\n",
		outcome.CorrectAnswers, outcome.TotalQuestions, outcome.CoinsEarned, outcome.PointsEarned)

	if user, err := api.Profile(); err == nil {
		fmt.Printf("当前金币: %d, 总积分: %d\n", user.Coins, user.Score)
	}
}

func serverPortFromConfig() string {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		return "8080"
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "8080"
	}
	if cfg.Server.Port == "" {
		return "8080"
	}
	return cfg.Server.Port
}

func readInt(reader *bufio.Reader, prompt string, min, max int) int {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal("读取输入失败")
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n
		}
		fmt.Println("输入无效，请重试")
	}
}
