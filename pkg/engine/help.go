package engine

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

const helpBody = `🎮 GAME COMMANDS:
` + rule + `

📍 LOOK (l)          - Look around current room
   look <direction>  - Look in specific direction (n/s/e/w)

🚶 MOVE (m, go)      - Move in a direction
   move <direction>  - Move north/south/east/west (n/s/e/w)

🤏 GRAB (g, take)    - Pick up an item
   grab <item>       - Grab specific item

🎒 INVENTORY (i)     - Show your inventory

🔧 USE (u)           - Use an item from inventory
   use <item>        - Use specific item

🔍 EXAMINE (x)       - Examine an item in detail
   examine <item>    - Get detailed item information

⚔️ FIGHT (f)         - Fight an enemy
   fight <enemy>     - Fight specific enemy

📊 STATUS (st)       - Show your health and progress

❓ HELP (h)          - Show this help
🚪 QUIT (q)          - Exit game

💡 TIP: You can use abbreviations!
   'm n' = 'move north', 'l e' = 'look east', etc.

` + rule

// HelpText returns the command reference shown for help, h or ?.
func HelpText() string {
	return helpBody
}
