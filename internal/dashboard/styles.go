package dashboard

const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 30px 0; margin-bottom: 30px; }
header h1 { font-size: 2.2rem; margin-bottom: 10px; }
.widget { margin-bottom: 25px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 20px; }
.stat-card { border-radius: 12px; padding: 20px; text-align: center; transition: transform 0.2s; }
.stat-card:hover { transform: translateY(-5px); }
.stat-card .number { font-size: 2.4rem; font-weight: bold; color: rgba(59, 130, 246, 1); }
.stat-card .number.small { font-size: 1.5rem; padding: 8px 0; }
.stat-card .label { margin-top: 5px; }
.chart-box, .table-box, .form-box { border-radius: 12px; padding: 20px; }
.chart-box h3, .table-box h3, .form-box h3 { margin-bottom: 15px; font-size: 1.2rem; }
.chart-container { position: relative; width: 100%; }
form { display: grid; grid-template-columns: 120px 1fr; gap: 12px; align-items: center; max-width: 520px; }
select, input { padding: 8px 10px; border-radius: 8px; font-size: 0.95rem; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 12px 15px; text-align: left; }
th { font-weight: 600; }
.swatch { display: inline-block; width: 14px; height: 14px; border-radius: 3px; border: 2px solid; margin-right: 8px; vertical-align: middle; }
.text-center { text-align: center; }
.py-8 { padding-top: 2rem; padding-bottom: 2rem; }
.empty { opacity: 0.7; }
footer { text-align: center; padding: 30px 0; margin-top: 30px; }
`

const lightThemeCSS = baseCSS + `
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f3f4f6; color: #1f2937; min-height: 100vh; }
header p, .stat-card .label, footer { color: #6b7280; }
.stat-card, .chart-box, .table-box, .form-box { background: #ffffff; border: 1px solid #e5e7eb; box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08); }
select, input { border: 1px solid #d1d5db; background: #ffffff; color: #1f2937; }
th { background: #f9fafb; }
th, td { border-bottom: 1px solid #e5e7eb; }
.text-gray-500 { color: #6b7280; }
`

const darkThemeCSS = baseCSS + `
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); color: #e4e4e4; min-height: 100vh; }
header p, .stat-card .label, footer { color: #888; }
.stat-card, .chart-box, .table-box, .form-box { background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); }
select, input { border: 1px solid rgba(255,255,255,0.2); background: rgba(0,0,0,0.2); color: #e4e4e4; }
th { background: rgba(255,255,255,0.05); }
th, td { border-bottom: 1px solid rgba(255,255,255,0.1); }
.text-gray-500 { color: #9ca3af; }
`
