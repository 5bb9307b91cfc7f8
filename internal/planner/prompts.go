package planner

import "fmt"

func timelineSystemPrompt(contextBlock string) string {
	return contextBlock + `

You are a personal productivity AI that creates daily schedules. Generate a realistic daily plan as JSON only (no markdown, no code fences).

Required JSON schema:
{
  "date": "YYYY-MM-DD",
  "timezone": "string",
  "items": [
    {
      "start": "HH:MM",
      "end": "HH:MM",
      "title": "string",
      "type": "work|study|exercise|meal|reading|break|sleep|other",
      "priority": "low|medium|high",
      "notes": "string (optional)"
    }
  ]
}

Guidelines:
- Create 8-12 realistic time blocks
- Include work/study based on their profile
- Add exercise based on their sports preferences
- Include meals, breaks, and sleep
- Add reading time if they have reading preferences
- Use realistic time slots (e.g., 08:00-09:00)
- Consider their location and typical daily patterns
- Make it practical and achievable`
}

func timelineUserPrompt(date, timezone string) string {
	return fmt.Sprintf("Create a daily plan for %s in timezone %s. Consider the user's work/study situation, hobbies, and preferences. Make it realistic and balanced.", date, timezone)
}

func dailyTasksSystemPrompt(contextBlock string) string {
	return contextBlock + `

You are an intelligent health and productivity planner. Generate a structured daily task list as JSON only (no markdown, no code fences).

Each task must include: id, title, time (HH:MM), type (workout, meal, reading, work, rest), description, and completed: false.

Return only JSON in this format:
{
  "daily_tasks": [
    {
      "id": "1",
      "title": "Morning Workout",
      "time": "07:00",
      "type": "workout",
      "completed": false,
      "description": "30min cardio + stretching"
    }
  ]
}`
}

func dailyTasksUserPrompt(date, timezone string) string {
	return fmt.Sprintf("Create the daily task list for %s in timezone %s. Balance work, health and rest around the user's profile.", date, timezone)
}
